package export

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// minutesToDocx renders the minutes bullets and the action item table into
// a styled docx file.
func minutesToDocx(title string, minutes meeting.Minutes, items []meeting.ActionItem, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, bullet := range minutes.Bullets {
		p := doc.AddParagraph("")
		p.AddText("• " + bullet).Font(fontName).Size(fontSize).Color("000000")
	}

	if len(items) > 0 {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Action Items", true, 15)
		for _, it := range items {
			p := doc.AddParagraph("")
			p.AddText("• ").Font(fontName).Size(fontSize).Color("000000")
			p.AddText(it.Task).Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(" (owner: "+it.Owner+", deadline: "+it.Deadline+")").Font(fontName).Size(fontSize).Color("000000")
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
