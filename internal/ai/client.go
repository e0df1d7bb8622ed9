// ai/client.go - Generative-AI gateway over an OpenAI-compatible API
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/noor-latif/foliocms/internal/logger"
	"github.com/noor-latif/foliocms/internal/models"
)

// ErrUnavailable is returned when no API key is configured. GeneratePalette
// is the exception: it falls back to a fixed default palette instead.
var ErrUnavailable = errors.New("ai gateway not configured")

// Tone selects the voice for headline generation
const (
	ToneProfessional = "professional"
	ToneCreative     = "creative"
)

type HeadlineRequest struct {
	AboutMe string `json:"about_me"`
	Tone    string `json:"tone"`
}

type SkillsRequest struct {
	Industry       string `json:"industry"`
	JobDescription string `json:"job_description,omitempty"`
}

type PaletteRequest struct {
	Theme string `json:"theme"`
}

// Client is the gateway interface the handlers depend on. Each call is a
// single request: no retry, no streaming, no cancellation beyond ctx.
type Client interface {
	GenerateHeadline(ctx context.Context, req HeadlineRequest) (string, error)
	RecommendSkills(ctx context.Context, req SkillsRequest) ([]string, error)
	GeneratePalette(ctx context.Context, req PaletteRequest) (models.ThemeColors, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewFromEnv builds a client from AI_API_KEY, AI_BASE_URL and AI_MODEL.
// A missing API key yields an unconfigured client rather than an error, so
// the rest of the app keeps working without the gateway.
func NewFromEnv(log *logger.Logger) Client {
	apiKey := strings.TrimSpace(os.Getenv("AI_API_KEY"))

	baseURL := strings.TrimSpace(os.Getenv("AI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("AI_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}

	if apiKey == "" {
		log.Warn("AI gateway disabled: AI_API_KEY not set")
	}

	return &client{
		log:        log.With("component", "ai"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// DefaultPalette is the fixed fallback used when the gateway is unavailable
func DefaultPalette() models.ThemeColors {
	return models.ThemeColors{
		Background: "222 47% 11%",
		Foreground: "210 40% 98%",
		Primary:    "217 91% 60%",
		Accent:     "160 84% 39%",
	}
}

func (c *client) configured() bool {
	return c.apiKey != ""
}

// GenerateHeadline produces a short portfolio headline from the about text
func (c *client) GenerateHeadline(ctx context.Context, req HeadlineRequest) (string, error) {
	if !c.configured() {
		return "", ErrUnavailable
	}
	tone := req.Tone
	if tone != ToneCreative {
		tone = ToneProfessional
	}

	system := "You write portfolio headlines. Respond with JSON only: {\"headline\": \"...\"}."
	user := fmt.Sprintf("Tone: %s.\nAbout me:\n%s\n\nWrite one headline of at most 12 words.", tone, req.AboutMe)

	var out struct {
		Headline string `json:"headline"`
	}
	if err := c.generateJSON(ctx, system, user, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Headline) == "" {
		return "", fmt.Errorf("model returned empty headline")
	}
	return out.Headline, nil
}

// RecommendSkills suggests skill names for an industry and optional job spec
func (c *client) RecommendSkills(ctx context.Context, req SkillsRequest) ([]string, error) {
	if !c.configured() {
		return nil, ErrUnavailable
	}

	system := "You recommend technical skills. Respond with JSON only: {\"skills\": [\"...\"]}."
	user := fmt.Sprintf("Industry: %s.", req.Industry)
	if req.JobDescription != "" {
		user += "\nJob description:\n" + req.JobDescription
	}
	user += "\n\nList 8-12 relevant skills."

	var out struct {
		Skills []string `json:"skills"`
	}
	if err := c.generateJSON(ctx, system, user, &out); err != nil {
		return nil, err
	}
	if len(out.Skills) == 0 {
		return nil, fmt.Errorf("model returned no skills")
	}
	return out.Skills, nil
}

// GeneratePalette produces four HSL triples for a described theme. Falls
// back to DefaultPalette when the gateway is unavailable.
func (c *client) GeneratePalette(ctx context.Context, req PaletteRequest) (models.ThemeColors, error) {
	if !c.configured() {
		c.log.Debug("palette fallback used", "theme", req.Theme)
		return DefaultPalette(), nil
	}

	system := `You design color palettes. Respond with JSON only:
{"background": "H S% L%", "foreground": "H S% L%", "primary": "H S% L%", "accent": "H S% L%"}.
Each value is an HSL triple like "222 47% 11%".`
	user := fmt.Sprintf("Theme description: %s", req.Theme)

	var out models.ThemeColors
	if err := c.generateJSON(ctx, system, user, &out); err != nil {
		return models.ThemeColors{}, err
	}
	if out.Background == "" || out.Foreground == "" || out.Primary == "" || out.Accent == "" {
		return models.ThemeColors{}, fmt.Errorf("model returned incomplete palette")
	}
	return out, nil
}
