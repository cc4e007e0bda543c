package predict

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siamdraw/lotto-cli/internal/model"
)

// defaultReasoning is stamped when the endpoint omits an explanation.
const defaultReasoning = "ระบบไม่ได้ให้คำอธิบายสำหรับชุดตัวเลขนี้"

// rawPrediction mirrors the contracted response shape. Every field is
// optional on the way in; normalization forces the invariants.
type rawPrediction struct {
	Prize1     string   `json:"prize1"`
	Front3     []string `json:"front3"`
	Rear3      []string `json:"rear3"`
	Rear2      string   `json:"rear2"`
	Reasoning  string   `json:"reasoning"`
	Confidence *float64 `json:"confidence"`
	Sources    []string `json:"sources"`
}

// normalizeResponse turns whatever the endpoint returned into a canonical
// NumberSet. Unparseable text is treated as an empty object so the caller
// always gets a record satisfying the digit-width invariants.
func normalizeResponse(text string, mode model.Mode, drawDate string, now time.Time) *model.NumberSet {
	var raw rawPrediction
	if err := json.Unmarshal([]byte(cleanJSON(text)), &raw); err != nil {
		zap.L().Warn("predict: response is not valid JSON, falling back to defaults",
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		raw = rawPrediction{}
	}

	reasoning := raw.Reasoning
	if reasoning == "" {
		reasoning = defaultReasoning
	}

	var confidence *float64
	if raw.Confidence != nil {
		c := clamp(*raw.Confidence, 0, 100)
		confidence = &c
	}

	sources := raw.Sources
	if sources == nil {
		sources = []string{}
	}

	return &model.NumberSet{
		ID:          uuid.NewString(),
		FirstPrize:  padDigits(raw.Prize1, 6),
		FrontThree:  padTriples(raw.Front3),
		RearThree:   padTriples(raw.Rear3),
		RearTwo:     padDigits(raw.Rear2, 2),
		Source:      mode.Source(),
		Reasoning:   reasoning,
		Confidence:  confidence,
		DrawDate:    drawDate,
		Sources:     sources,
		GeneratedAt: now,
	}
}

// padDigits forces s to exactly width decimal digits: right-padded with '0'
// when short, truncated when long. Anything containing a non-digit is treated
// as absent.
func padDigits(s string, width int) string {
	for _, r := range s {
		if r < '0' || r > '9' {
			s = ""
			break
		}
	}
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat("0", width-len(s))
}

// padTriples normalizes each entry to three digits, pads the array with "000"
// up to two entries and takes only the first two.
func padTriples(in []string) []string {
	out := make([]string, 0, 2)
	for _, e := range in {
		if len(out) == 2 {
			break
		}
		out = append(out, padDigits(e, 3))
	}
	for len(out) < 2 {
		out = append(out, "000")
	}
	return out
}

// cleanJSON strips markdown fences and surrounding prose from a model
// response, leaving the outermost JSON object.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
