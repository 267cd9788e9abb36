package reply

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	warningPrefix = "⚠️"
	statusPrefix  = "⚙️"
	fence         = "```"
)

type RenderOptions struct {
	// Echo prints the input line above the reply.
	Echo bool
}

func renderView(exchange Exchange, opts RenderOptions, s styles) string {
	var lines []string
	if opts.Echo {
		lines = append(lines, s.prompt.Render("› "+exchange.Input))
	}

	result := exchange.Result
	switch {
	case result == nil:
		lines = append(lines, s.empty.Render("not a command; passed through to the agent"))
	case result.Reply == nil:
		lines = append(lines, s.empty.Render("handled without a reply"))
	default:
		lines = append(lines, renderText(result.Reply.Text, s)...)
		if url := strings.TrimSpace(result.Reply.MediaURL); url != "" {
			lines = append(lines, s.meta.Render("media: "+url))
		}
		if result.ShouldContinue {
			lines = append(lines, s.meta.Render("message continues to the agent"))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderText styles each line by its leading marker and draws fenced blocks
// as an indented gutter.
func renderText(text string, s styles) []string {
	var lines []string
	var block []string
	inBlock := false

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			if inBlock {
				lines = append(lines, s.code.Render(strings.Join(block, "\n")))
				block = nil
			}
			inBlock = !inBlock
			continue
		}
		if inBlock {
			block = append(block, line)
			continue
		}
		lines = append(lines, lineStyle(line, s).Render(line))
	}

	if inBlock && len(block) > 0 {
		lines = append(lines, s.code.Render(strings.Join(block, "\n")))
	}
	return lines
}

func lineStyle(line string, s styles) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, warningPrefix):
		return s.warning
	case strings.HasPrefix(line, statusPrefix):
		return s.status
	case strings.HasPrefix(line, "💸"):
		return s.title
	default:
		return s.detail
	}
}
