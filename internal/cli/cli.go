// Package cli defines the worddeck command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerissecure/worddeck"
	"github.com/aerissecure/worddeck/internal/app"
	"github.com/aerissecure/worddeck/internal/config"
	"github.com/aerissecure/worddeck/vocab"
	"github.com/aerissecure/worddeck/xlsx"
)

// Interactive runs the desktop form until it is closed.
type Interactive func(cfg *config.Config, log *slog.Logger) error

// NewRootCmd builds the root command. Without -i or -o it runs interactive;
// when interactive is nil or fails with an error for which fallback reports
// true, the batch run uses the configured paths instead.
func NewRootCmd(cfg *config.Config, log *slog.Logger, interactive Interactive, fallback func(error) bool) *cobra.Command {
	var inputPath, outputPath string

	rootCmd := &cobra.Command{
		Use:   "worddeck",
		Short: "单词PPT生成器",
		Long: `worddeck reads a vocabulary sheet (英文单词, 音标, 单词释义, 词根词缀,
例句, 例句释义) and writes a PowerPoint deck with one slide per word.

Run without flags to open the desktop form.`,
		Version:      app.BuildVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			batch := cmd.Flags().Changed("input") || cmd.Flags().Changed("output")
			if !batch && interactive != nil {
				err := interactive(cfg, log)
				if err == nil || fallback == nil || !fallback(err) {
					return err
				}
				log.Info("desktop form unavailable, running batch", slog.Any("reason", err))
			}
			return runBatch(cmd.OutOrStdout(), cfg, inputPath, outputPath, log)
		},
	}
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", cfg.Input, "输入Excel文件路径")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", cfg.Output, "输出PPT文件路径")

	rootCmd.AddCommand(newTemplateCmd(cfg))
	return rootCmd
}

func runBatch(out io.Writer, cfg *config.Config, input, output string, log *slog.Logger) error {
	n, err := worddeck.Generate(input, output, worddeck.Options{
		WrapThreshold: cfg.Layout.WrapThreshold,
		ProgressEvery: cfg.Layout.ProgressEvery,
		OnLoaded: func(total int) {
			fmt.Fprintf(out, "开始生成PPT，共 %d 个单词...\n", total)
		},
		Progress: func(done, total int) {
			fmt.Fprintf(out, "处理进度：%d/%d\n", done, total)
		},
		Logger: log,
	})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(out, "\n成功生成PPT文件：%s\n共处理 %d 个单词\n", output, n)
	return nil
}

// describe turns pipeline errors into the message printed by batch mode.
func describe(err error) error {
	var (
		openErr    *vocab.FileOpenError
		missingErr *vocab.MissingColumnsError
		saveErr    *vocab.SaveError
	)
	switch {
	case errors.Is(err, worddeck.ErrNoRecords):
		return fmt.Errorf("表格中没有数据：%w", err)
	case errors.As(err, &missingErr):
		return fmt.Errorf("表格缺少必要的列：%s: %w", strings.Join(missingErr.Columns, ", "), err)
	case errors.As(err, &openErr):
		return fmt.Errorf("读取表格文件时发生错误：%w", err)
	case errors.As(err, &saveErr):
		return fmt.Errorf("保存PPT文件时发生错误：%w", err)
	}
	return err
}

func newTemplateCmd(cfg *config.Config) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "生成示例表格模板",
		Long:  "Writes a sample workbook with the required header row and five example words.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := xlsx.SaveTemplate(outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "模板文件创建成功: %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", cfg.Template.Name, "模板文件路径")
	return cmd
}
