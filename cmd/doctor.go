package cmd

import (
	"github.com/fatih/color"
	"github.com/k1LoW/iconize"
	"github.com/k1LoW/iconize/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check iconize environment and configuration",
	Long:  `Check iconize environment and configuration to ensure icons can be generated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Color setup
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		allOK := true

		// 1. Check configuration file
		cmd.Print("🔧 Checking configuration file ... ")

		cfg, err := config.Load(profile)
		if err != nil {
			red.Println("✗ CONFIG ERROR")
			cmd.Printf("   Error loading config: %v\n", err)
			cfg = nil
			allOK = false
		} else {
			green.Println("✓ OK")
		}

		// 2. Check PNG pipeline and output directory
		cmd.Print("🖼  Checking PNG pipeline and output directory ... ")

		outDir := dir
		if outDir == "" && cfg != nil {
			outDir = cfg.Dir
		}
		g, err := iconize.New(iconize.WithDir(outDir))
		if err != nil {
			red.Println("✗ SETUP FAILED")
			cmd.Printf("   Error: %v\n", err)
			allOK = false
		} else if err := g.Preflight(); err != nil {
			red.Println("✗ FAILED")
			cmd.Printf("   Error: %v\n", err)
			cmd.Println("   Pick a writable output directory with --dir, or create the icons manually with a design tool.")
			allOK = false
		} else {
			green.Println("✓ OK")
		}

		// 3. Check badge glyph font (optional, degraded mode without it)
		cmd.Print("🔤 Checking badge glyph font ... ")

		fp := fontPath
		if fp == "" && cfg != nil {
			fp = cfg.FontPath
		}
		if fp == "" {
			fp = iconize.FindFont()
		}
		if fp == "" {
			yellow.Println("⚠️ NOT FOUND")
			cmd.Println("   No bold TrueType font found; icons will be rendered without the \"!\" glyph.")
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Font: %s\n", fp)
		}

		// Final message
		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Print("All checks passed! You are ready to use iconize")
			bold.Println(".")
			cmd.Println()
			cmd.Println("Try generating the icons:")
			yellow.Println("  iconize gen")
		} else {
			red.Println("⚠️  Setup is incomplete.")
			cmd.Println("\nPlease fix the issues above to use iconize properly.")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory to check")
}
