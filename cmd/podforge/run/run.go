package runcmder

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/logger"
	"github.com/podforge/podforge/pkg/pipeline"
	"github.com/podforge/podforge/pkg/voices"
)

const runLongDesc string = `Convert content into a podcast against a running podforge server.

Provide exactly one source: a URL to scrape, a text file to upload,
or inline text. The command streams the generated conversation as it
forms, then writes the synthesized audio to the output file.

Examples:
  podforge run --url https://example.com/post --out episode.mp3
  podforge run --file notes.md --language korean --out episode.mp3
  podforge run --text "solar panels are neat" --out episode.mp3`

const runShortDesc string = "Convert a URL, file, or text into a podcast"

type runCommander struct {
	serverURL string
	url       string
	text      string
	file      string
	language  string
	persona1  string
	persona2  string
	voice1    string
	voice2    string
	out       string
	debug     bool
}

func NewRunCmd() *cobra.Command {
	cmder := &runCommander{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: runShortDesc,
		Long:  runLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cmder.serverURL, "server", "s", "http://localhost:8080", "podforge server URL")
	cmd.Flags().StringVar(&cmder.url, "url", "", "URL to scrape for content")
	cmd.Flags().StringVar(&cmder.text, "text", "", "Inline text content")
	cmd.Flags().StringVar(&cmder.file, "file", "", "File to upload for content")
	cmd.Flags().StringVar(&cmder.language, "language", "", "Conversation language (e.g. english, korean)")
	cmd.Flags().StringVar(&cmder.persona1, "persona1", "", "Persona for the first speaker (defaults per language)")
	cmd.Flags().StringVar(&cmder.persona2, "persona2", "", "Persona for the second speaker (defaults per language)")
	cmd.Flags().StringVar(&cmder.voice1, "voice1", "", "Voice ID for the first speaker")
	cmd.Flags().StringVar(&cmder.voice2, "voice2", "", "Voice ID for the second speaker")
	cmd.Flags().StringVarP(&cmder.out, "out", "o", "podcast.mp3", "Output audio file")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *runCommander) run(ctx context.Context) error {
	log := logger.NewLogger(c.debug)
	defer log.Sync()

	src, err := c.source()
	if err != nil {
		return err
	}

	client := pipeline.NewClient(c.serverURL, log)
	ctrl := pipeline.NewController(client, voices.NewAssignment(c.voice1, c.voice2), log)
	ctrl.SetPersonas(c.persona1, c.persona2)

	printed := map[pipeline.StepName]pipeline.StepStatus{}
	ctrl.OnUpdate(func(snap pipeline.Snapshot) {
		for _, step := range pipeline.Steps(snap) {
			if printed[step.Name] != step.Status {
				printed[step.Name] = step.Status
				fmt.Printf("%-14s %s\n", step.Name, step.Status)
			}
		}
	})

	out, err := ctrl.Run(ctx, src, c.language)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.out, out.Audio, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}

	log.Info("podcast written",
		zap.String("title", out.Title),
		zap.Int("turns", len(out.Script)),
		zap.String("path", c.out),
	)
	fmt.Printf("wrote %s (%d turns, %d bytes)\n", c.out, len(out.Script), len(out.Audio))
	return nil
}

// source builds the pipeline source from the flags, requiring exactly one of
// url, file, or text.
func (c *runCommander) source() (pipeline.Source, error) {
	set := 0
	for _, v := range []string{c.url, c.file, c.text} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return pipeline.Source{}, fmt.Errorf("provide exactly one of --url, --file, or --text")
	}

	switch {
	case c.url != "":
		return pipeline.Source{URL: c.url}, nil
	case c.file != "":
		data, err := os.ReadFile(c.file)
		if err != nil {
			return pipeline.Source{}, fmt.Errorf("read file: %w", err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(c.file))
		if contentType == "" {
			contentType = "text/plain"
		}
		return pipeline.Source{
			Filename:    filepath.Base(c.file),
			ContentType: contentType,
			Data:        data,
		}, nil
	default:
		return pipeline.Source{Text: c.text}, nil
	}
}
