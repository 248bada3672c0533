package harp

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Mode selects what a Harp generates.
type Mode string

const (
	ModeText  Mode = "text"
	ModeImage Mode = "image"
	ModeAudio Mode = "audio"
)

const defaultPrompt = "Harmony between models."

// Artifact describes a generated output. Data is nil until a real backend
// produces content.
type Artifact struct {
	Mode     Mode
	Prompt   string
	Text     string
	Width    int
	Height   int
	Duration int
	Data     []byte
}

// Harp generates media from a prompt.
type Harp struct {
	name     string
	mode     Mode
	maxLen   int
	width    int
	height   int
	duration int
	// requested keeps an unsupported mode so the fallback can be reported.
	requested string
}

// New builds a Harp. Options: mode, max_len, width, height, duration.
func New(name string, opts section.Options) *Harp {
	h := &Harp{
		name:     name,
		maxLen:   opts.Int("max_len", 64),
		width:    opts.Int("width", 256),
		height:   opts.Int("height", 256),
		duration: opts.Int("duration", 3),
	}
	h.mode, h.requested = parseMode(opts.String("mode", string(ModeText)))
	return h
}

func parseMode(s string) (Mode, string) {
	switch m := Mode(s); m {
	case ModeText, ModeImage, ModeAudio:
		return m, ""
	default:
		return ModeText, s
	}
}

// Name returns the instance name.
func (h *Harp) Name() string { return h.name }

// Mode returns the active mode.
func (h *Harp) Mode() Mode { return h.mode }

// GenerateText returns the prompt truncated to maxLen runes behind a mode tag.
func (h *Harp) GenerateText(ctx context.Context, prompt string, maxLen int) Artifact {
	r := []rune(prompt)
	if maxLen >= 0 && len(r) > maxLen {
		r = r[:maxLen]
	}
	a := Artifact{Mode: h.mode, Prompt: prompt, Text: "[Stub:" + string(h.mode) + "] " + string(r)}
	h.logger(ctx).Info("generate_text()", "out", a.Text)
	return a
}

// GenerateImage returns image metadata for prompt.
func (h *Harp) GenerateImage(ctx context.Context, prompt string, width, height int) Artifact {
	a := Artifact{Mode: ModeImage, Prompt: prompt, Width: width, Height: height}
	h.logger(ctx).Info("generate_image()", "prompt", prompt, "width", width, "height", height)
	return a
}

// GenerateAudio returns audio metadata for prompt.
func (h *Harp) GenerateAudio(ctx context.Context, prompt string, durationSeconds int) Artifact {
	a := Artifact{Mode: ModeAudio, Prompt: prompt, Duration: durationSeconds}
	h.logger(ctx).Info("generate_audio()", "prompt", prompt, "duration_s", durationSeconds)
	return a
}

// Generate dispatches on the active mode.
func (h *Harp) Generate(ctx context.Context, prompt string) Artifact {
	switch h.mode {
	case ModeImage:
		return h.GenerateImage(ctx, prompt, h.width, h.height)
	case ModeAudio:
		return h.GenerateAudio(ctx, prompt, h.duration)
	default:
		return h.GenerateText(ctx, prompt, h.maxLen)
	}
}

// Perform generates from score["prompt"].
func (h *Harp) Perform(ctx context.Context, score section.Score) error {
	logger := h.logger(ctx)
	if h.requested != "" {
		logger.Warn("Unsupported mode. Defaulting to 'text'.", "requested", h.requested)
	}
	logger.Info("Performing.", "mode", h.mode)

	h.Generate(ctx, score.String("prompt", defaultPrompt))

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (h *Harp) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", h.name, "kind", Kind)
}
