package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/smallrender/sr-submit/internal/catalog"
	"github.com/smallrender/sr-submit/internal/config"
	"github.com/smallrender/sr-submit/internal/models"
	"github.com/smallrender/sr-submit/internal/submit"
)

// newSubmitCmd creates the 'submit' command.
func newSubmitCmd() *cobra.Command {
	var (
		manifestPath string
		templateID   string
		allScenes    bool
		sceneName    string
		chunkSize    int
		priority     int
		frames       string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit render job(s) to the farm",
		Long: `Submit one or more render jobs to the SmallRender farm.

The scene manifest is a JSON file exported by the host application,
describing the document and its scenes:

  {
    "document": "/projects/shot010.blend",
    "active_scene": "Scene",
    "scenes": [
      {"name": "Scene", "frame_start": 1, "frame_end": 250,
       "output_path": "//render/shot010_"}
    ]
  }

By default only the active scene is submitted; --all-scenes submits every
scene as a separate job.

Examples:
  # Submit the active scene with the default template
  sr-submit submit --manifest shot010.json --template film

  # Submit every scene, overriding the frame range
  sr-submit submit --manifest shot010.json --all-scenes --frames 1-100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := GetLogger()

			// Farm preconditions, most specific cause first.
			if err := config.Diagnose(configPath()); err != nil {
				return err
			}
			farm := config.ResolveFarmRoot(configPath())
			inbox := config.SubmissionsDir(farm)

			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}

			scenes, err := selectScenes(manifest, allScenes, sceneName)
			if err != nil {
				return err
			}

			cat := newCatalog()
			settings, err := resolveSettings(cat, templateID, chunkSize, priority, frames, outputPath, cmd)
			if err != nil {
				return err
			}
			if err := submit.ValidateSettings(settings); err != nil {
				return err
			}
			if err := checkTemplateExists(cat, settings.TemplateID); err != nil {
				return err
			}

			host, err := os.Hostname()
			if err != nil {
				return fmt.Errorf("failed to determine hostname: %w", err)
			}

			descriptors := submit.BuildDescriptors(settings, scenes, manifest.Document, host, time.Now().UnixMilli())

			submitter := submit.NewSubmitter(inbox)
			var bar *progressbar.ProgressBar
			if len(descriptors) > 1 {
				bar = progressbar.Default(int64(len(descriptors)), "submitting")
				submitter.OnSubmit = func(desc models.JobDescriptor) {
					bar.Add(1)
				}
			}

			submitted, err := submitter.SubmitBatch(descriptors)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				if submitted > 0 {
					log.Warn().Int("submitted", submitted).Msg("Batch aborted partway")
				}
				return fmt.Errorf("submitted %d of %d: %w", submitted, len(descriptors), err)
			}

			plural := ""
			if submitted != 1 {
				plural = "s"
			}
			fmt.Printf("Submitted %d job%s\n", submitted, plural)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Scene manifest JSON exported by the host application (required)")
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Job template ID (default: prefs, or the only template on the farm)")
	cmd.Flags().BoolVar(&allScenes, "all-scenes", false, "Submit every scene in the manifest as a separate job")
	cmd.Flags().StringVar(&sceneName, "scene", "", "Submit a single named scene instead of the active one")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Frames per render chunk (default: prefs)")
	cmd.Flags().IntVar(&priority, "priority", 0, "Job priority 1-100, higher renders first (default: prefs)")
	cmd.Flags().StringVar(&frames, "frames", "", "Override frame range as START-END (e.g. 1-250)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Override output path (relative paths resolve against the document)")
	cmd.MarkFlagRequired("manifest")

	return cmd
}

// loadManifest reads and validates the host application's scene manifest.
// The document path is made absolute here so descriptors always carry an
// absolute scene_file.
func loadManifest(path string) (*models.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene manifest: %w", err)
	}
	var manifest models.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse scene manifest: %w", err)
	}

	if manifest.Document == "" {
		return nil, submit.ErrNoDocument
	}
	if _, err := os.Stat(manifest.Document); err != nil {
		return nil, fmt.Errorf("%w: %s", submit.ErrNoDocument, manifest.Document)
	}
	if abs, err := filepath.Abs(manifest.Document); err == nil {
		manifest.Document = abs
	}
	if len(manifest.Scenes) == 0 {
		return nil, submit.ErrNoScenes
	}
	return &manifest, nil
}

// selectScenes picks the scenes to submit: all of them, one by name, or the
// manifest's active scene (falling back to the first).
func selectScenes(manifest *models.Manifest, allScenes bool, sceneName string) ([]models.Scene, error) {
	if allScenes {
		return manifest.Scenes, nil
	}

	want := sceneName
	if want == "" {
		want = manifest.ActiveScene
	}
	if want == "" {
		return manifest.Scenes[:1], nil
	}
	for _, scene := range manifest.Scenes {
		if scene.Name == want {
			return []models.Scene{scene}, nil
		}
	}
	return nil, fmt.Errorf("scene %q not found in manifest", want)
}

// resolveSettings merges prefs and flags into submission settings.
// Precedence: explicit flag > prefs file > built-in default.
func resolveSettings(cat *catalog.Catalog, templateID string, chunkSize, priority int, frames, outputPath string, cmd *cobra.Command) (models.SubmitSettings, error) {
	prefs, err := config.LoadPrefs("")
	if err != nil {
		return models.SubmitSettings{}, err
	}

	settings := models.SubmitSettings{
		TemplateID: prefs.Template,
		ChunkSize:  prefs.ChunkSize,
		Priority:   prefs.Priority,
	}
	if templateID != "" {
		settings.TemplateID = templateID
	}
	if cmd.Flags().Changed("chunk-size") {
		settings.ChunkSize = chunkSize
	}
	if cmd.Flags().Changed("priority") {
		settings.Priority = priority
	}

	if frames != "" {
		start, end, err := parseFrameRange(frames)
		if err != nil {
			return models.SubmitSettings{}, err
		}
		settings.OverrideRange = true
		settings.FrameStart = start
		settings.FrameEnd = end
	}
	if outputPath != "" {
		settings.OverrideOutput = true
		settings.OutputPath = outputPath
	}

	// With no template from flag or prefs, a farm carrying exactly one
	// template is unambiguous.
	if settings.TemplateID == "" {
		if templates := cat.List(); len(templates) == 1 {
			settings.TemplateID = templates[0].ID
		}
	}

	return settings, nil
}

// checkTemplateExists verifies the chosen template is actually published on
// the farm, listing the alternatives when it isn't.
func checkTemplateExists(cat *catalog.Catalog, templateID string) error {
	templates := cat.List()
	available := make([]string, 0, len(templates))
	for _, tpl := range templates {
		if tpl.ID == templateID {
			return nil
		}
		available = append(available, tpl.ID)
	}
	if len(available) == 0 {
		return fmt.Errorf("template %q not found: no templates available on the farm", templateID)
	}
	return fmt.Errorf("template %q not found on the farm (available: %s)", templateID, strings.Join(available, ", "))
}

// parseFrameRange parses "START-END" into its two frame numbers.
func parseFrameRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid frame range %q (expected START-END)", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start frame %q", parts[0])
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end frame %q", parts[1])
	}
	return start, end, nil
}
