/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/k1LoW/iconize"
	"github.com/k1LoW/iconize/config"
	"github.com/k1LoW/iconize/handler/dot"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	dir      string
	fontPath string
	check    bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "generate extension icons",
	Long: `generate extension icons.

Renders icon16.png, icon48.png and icon128.png into the target directory,
overwriting existing files. With --check, no files are written; the existing
files are compared against a fresh render instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		if dir == "" {
			dir = cfg.Dir
		}
		if fontPath == "" {
			fontPath = cfg.FontPath
		}
		logger := slog.New(slogmulti.Fanout(
			dot.New(slog.NewTextHandler(os.Stdout, nil)),
			slog.NewJSONHandler(tb, nil),
		))
		g, err := iconize.New(
			iconize.WithDir(dir),
			iconize.WithFontPath(fontPath),
			iconize.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		if check {
			// Drift check only reads; skip the preflight write probe.
			return g.Check(ctx)
		}
		if err := g.Preflight(); err != nil {
			return fmt.Errorf("%w\n\nPick a writable output directory with --dir, or create the icons manually with a design tool", err)
		}
		return g.Generate(ctx)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory (default: current directory)")
	genCmd.Flags().StringVarP(&fontPath, "font", "f", "", "TrueType font for the badge glyph (default: search system fonts)")
	genCmd.Flags().BoolVarP(&check, "check", "", false, "compare existing icons against a fresh render without writing")
}
