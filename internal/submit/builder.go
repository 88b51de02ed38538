package submit

import (
	"path/filepath"
	"strings"

	"github.com/smallrender/sr-submit/internal/constants"
	"github.com/smallrender/sr-submit/internal/models"
	"github.com/smallrender/sr-submit/internal/pathutil"
)

// DefaultSceneName is the host application's name for an untouched scene.
// A single scene with this name is the common case and gets no scene_name
// override, so the dispatcher's default-scene handling applies.
const DefaultSceneName = "Scene"

// BuildDescriptors produces one normalized job descriptor per scene, in the
// caller-supplied scene order. Pure function of its inputs: no I/O, no clock
// reads. nowMS is the batch's base timestamp; each descriptor gets
// nowMS+index, keeping submitted_at_ms strictly increasing within the batch
// even when descriptors are built faster than one per millisecond.
//
// Preconditions (saved document, selected template, reachable farm) are the
// caller's to verify; the builder assumes them.
func BuildDescriptors(settings models.SubmitSettings, scenes []models.Scene, documentPath, host string, nowMS int64) []models.JobDescriptor {
	documentDir := filepath.Dir(documentPath)
	docBase := strings.TrimSuffix(filepath.Base(documentPath), filepath.Ext(documentPath))

	descriptors := make([]models.JobDescriptor, 0, len(scenes))
	for i, scene := range scenes {
		jobName := docBase
		if len(scenes) > 1 {
			jobName = docBase + " - " + scene.Name
		}

		frameStart, frameEnd := scene.FrameStart, scene.FrameEnd
		if settings.OverrideRange {
			frameStart, frameEnd = settings.FrameStart, settings.FrameEnd
		}

		outputPath := scene.OutputPath
		if settings.OverrideOutput && settings.OutputPath != "" {
			outputPath = settings.OutputPath
		}

		overrides := models.Overrides{
			SceneFile:  documentPath,
			OutputPath: pathutil.ResolveOutputPath(outputPath, documentDir),
		}
		// Only name the scene when the dispatcher can't assume the default:
		// multi-scene batches, or a scene renamed away from the host default.
		if len(scenes) > 1 || scene.Name != DefaultSceneName {
			overrides.SceneName = scene.Name
		}

		descriptors = append(descriptors, models.JobDescriptor{
			Version:         constants.DescriptorVersion,
			TemplateID:      settings.TemplateID,
			JobName:         jobName,
			SubmittedByHost: host,
			SubmittedAtMS:   nowMS + int64(i),
			Overrides:       overrides,
			FrameStart:      frameStart,
			FrameEnd:        frameEnd,
			ChunkSize:       settings.ChunkSize,
			Priority:        settings.Priority,
		})
	}
	return descriptors
}

// SyncFromScene snapshots a scene's native range and output path. Used to
// seed the override fields when an override toggle is switched on, so the
// user edits from the scene's values instead of stale ones.
func SyncFromScene(scene models.Scene) (frameStart, frameEnd int, outputPath string) {
	return scene.FrameStart, scene.FrameEnd, scene.OutputPath
}

// ValidateSettings checks the submission settings against descriptor field
// bounds. Returns nil if valid, or an error describing what's wrong.
func ValidateSettings(settings models.SubmitSettings) error {
	if settings.TemplateID == "" {
		return ErrNoTemplateSelected
	}
	if settings.ChunkSize < constants.MinChunkSize || settings.ChunkSize > constants.MaxChunkSize {
		return ErrInvalidChunkSize
	}
	if settings.Priority < constants.MinPriority || settings.Priority > constants.MaxPriority {
		return ErrInvalidPriority
	}
	if settings.OverrideRange && settings.FrameEnd < settings.FrameStart {
		return ErrInvalidFrameRange
	}
	return nil
}
