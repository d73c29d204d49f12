// Command slate lays out markup documents and optionally rasterizes them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"slate/pkg/layout"
	"slate/pkg/markup"
	"slate/pkg/render"
)

const version = "0.1.0"

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "slate",
	Short:   "Slate is a box-model layout engine for markup documents.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		var err error
		if viper.GetBool("debug") {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout <file>",
	Short: "Lay out a document and print the computed box tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		engine := newEngine()
		engine.Layout(root)

		if viper.GetBool("json") {
			return dumpJSON(cmd, root)
		}
		dumpTree(cmd, root, 0)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Lay out a document and rasterize it to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		engine := newEngine()
		engine.Layout(root)

		width := viper.GetInt("width")
		height := viper.GetInt("height")
		out := viper.GetString("output")

		renderer := render.NewRenderer(width, height)
		renderer.Render(root)
		if err := renderer.SavePNG(out); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		logger.Info("rendered document",
			zap.String("input", args[0]),
			zap.String("output", out),
			zap.Int("width", width),
			zap.Int("height", height))
		return nil
	},
}

func newEngine() *layout.Engine {
	return layout.NewEngine(layout.ViewportConfig{
		Width:        float64(viper.GetInt("width")),
		Height:       float64(viper.GetInt("height")),
		RootFontSize: 16,
	}, layout.WithLogger(logger))
}

func loadDocument(path string) (*markup.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	root, err := markup.FromHTML(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return root, nil
}

// dumpTree prints one line per element: tag, geometry, and any text.
func dumpTree(cmd *cobra.Command, el *markup.Element, depth int) {
	box := el.Box
	if box == nil {
		return
	}
	line := fmt.Sprintf("%s%s x=%.1f y=%.1f w=%.1f h=%.1f",
		strings.Repeat("  ", depth), el.Tag, box.X, box.Y, box.Width, box.Height)
	if el.HasText() {
		text := el.Text
		if len(text) > 40 {
			text = text[:40] + "..."
		}
		line += fmt.Sprintf(" %q", text)
	}
	cmd.Println(line)
	for _, child := range el.Children {
		dumpTree(cmd, child, depth+1)
	}
}

type boxDump struct {
	Tag      string    `json:"tag"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Text     string    `json:"text,omitempty"`
	Children []boxDump `json:"children,omitempty"`
}

func dumpJSON(cmd *cobra.Command, root *markup.Element) error {
	encoded, err := json.MarshalIndent(toDump(root), "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(encoded))
	return nil
}

func toDump(el *markup.Element) boxDump {
	d := boxDump{Tag: el.Tag, Text: el.Text}
	if el.Box != nil {
		d.X = el.Box.X
		d.Y = el.Box.Y
		d.Width = el.Box.Width
		d.Height = el.Box.Height
	}
	for _, child := range el.Children {
		d.Children = append(d.Children, toDump(child))
	}
	return d
}

func init() {
	rootCmd.PersistentFlags().Int("width", 800, "viewport width in pixels")
	rootCmd.PersistentFlags().Int("height", 600, "viewport height in pixels")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	layoutCmd.Flags().Bool("json", false, "emit the box tree as JSON")
	renderCmd.Flags().StringP("output", "o", "out.png", "output PNG path")

	viper.SetEnvPrefix("SLATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
