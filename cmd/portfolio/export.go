package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tperticaro.dev/internal/handlers"
	"tperticaro.dev/internal/i18n"
	"tperticaro.dev/internal/views"
)

var (
	exportOut  string
	exportLang string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a static snapshot of the page and the project catalog",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	exportCmd.Flags().StringVar(&exportLang, "lang", "", "page language (defaults to lang.default)")
}

func runExport(cmd *cobra.Command, args []string) error {
	lang := exportLang
	if lang == "" {
		lang = cfg.Lang.Default
	}
	tag, ok := i18n.Parse(lang)
	if !ok {
		return fmt.Errorf("unknown language %q", lang)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	projects := loadProjects()
	page := handlers.PageFactory(cfg, projects, newContactService(), logger)()

	var html bytes.Buffer
	err := views.Page(page.View(), i18n.Printer(tag), views.Options{
		Lang:            tag.String(),
		ModalCloseDelay: cfg.Modal.CloseDelay,
		NavCloseDelay:   cfg.Nav.CloseDelay,
	}).Render(cmd.Context(), &html)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := writeFile(cmd, filepath.Join(exportOut, "index.html"), html.Bytes()); err != nil {
		return err
	}

	if projects == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "  Skipped projects.json: catalog unavailable")
		return nil
	}
	data, err := json.MarshalIndent(projects.GetAll(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling projects: %w", err)
	}
	return writeFile(cmd, filepath.Join(exportOut, "projects.json"), data)
}

func writeFile(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Created %s (%d bytes)\n", path, len(data))
	return nil
}
