package predict

import (
	"fmt"

	"github.com/siamdraw/lotto-cli/internal/model"
	"github.com/siamdraw/lotto-cli/pkg/gemini"
)

// promptSpec carries the fixed instruction template and persona for one
// prediction mode. Templates are parameterized only by the draw date.
type promptSpec struct {
	system    string
	template  string
	webSearch bool
}

const jsonReminder = `Return only a JSON object with exactly these fields:
{"prize1": "<6 digits>", "front3": ["<3 digits>", "<3 digits>"], "rear3": ["<3 digits>", "<3 digits>"], "rear2": "<2 digits>", "reasoning": "<Thai explanation>", "confidence": <0-100>, "sources": ["<name>", ...]}`

var promptSpecs = map[model.Mode]promptSpec{
	model.ModeAI: {
		system: "คุณคือนักวิเคราะห์สลากกินแบ่งรัฐบาลไทย ให้ชุดตัวเลขพร้อมเหตุผลสั้น ๆ เป็นภาษาไทย",
		template: `ทำนายผลสลากกินแบ่งรัฐบาลไทยสำหรับงวดวันที่ %s
ให้รางวัลที่ 1 (6 หลัก) เลขหน้า 3 ตัวสองชุด เลขท้าย 3 ตัวสองชุด และเลขท้าย 2 ตัว
` + jsonReminder,
	},
	model.ModeHistorical: {
		system: "คุณคือนักสถิติที่วิเคราะห์สถิติผลสลากกินแบ่งรัฐบาลไทยย้อนหลัง อ้างอิงวิธีทางสถิติที่ใช้ในช่อง sources",
		template: `วิเคราะห์สถิติผลสลากกินแบ่งรัฐบาลไทยย้อนหลัง แล้วทำนายงวดวันที่ %s
ใช้ความถี่ของเลขที่ออกบ่อย เลขที่ไม่ออกนาน และรูปแบบตามฤดูกาล ระบุวิธีทางสถิติที่ใช้ใน sources
` + jsonReminder,
		webSearch: true,
	},
	model.ModeGuru: {
		system: "คุณคือผู้รวบรวมเลขเด็ดจากสำนักดังทั่วประเทศไทย ระบุชื่อสำนักหรืออาจารย์ที่อ้างอิงในช่อง sources",
		template: `รวบรวมเลขเด็ดจากอาจารย์ดังและสำนักต่าง ๆ สำหรับงวดวันที่ %s
สรุปเป็นชุดตัวเลขเดียวที่สำนักส่วนใหญ่เห็นตรงกัน ระบุชื่อสำนักที่อ้างอิงใน sources
` + jsonReminder,
		webSearch: true,
	},
}

// responseSchema is the strict output contract declared to the endpoint.
func responseSchema() *gemini.Schema {
	digits := func(desc string) *gemini.Schema {
		return &gemini.Schema{Type: gemini.TypeString, Description: desc}
	}
	triplePair := func(desc string) *gemini.Schema {
		return &gemini.Schema{
			Type:        gemini.TypeArray,
			Description: desc,
			Items:       digits("three decimal digits"),
		}
	}
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"prize1":     digits("first prize, six decimal digits"),
			"front3":     triplePair("two front-three prizes"),
			"rear3":      triplePair("two rear-three prizes"),
			"rear2":      digits("rear-two prize, two decimal digits"),
			"reasoning":  {Type: gemini.TypeString, Description: "explanation in Thai"},
			"confidence": {Type: gemini.TypeNumber, Description: "confidence percent, 0-100"},
			"sources":    {Type: gemini.TypeArray, Items: &gemini.Schema{Type: gemini.TypeString}},
		},
		Required: []string{"prize1", "front3", "rear3", "rear2", "reasoning"},
	}
}

func (p promptSpec) prompt(drawDate string) string {
	return fmt.Sprintf(p.template, drawDate)
}
