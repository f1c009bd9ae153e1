package format

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhamidi/isgci/iq"
)

var (
	kindStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	relStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	classStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	guideStyle = lipgloss.NewStyle().Faint(true)
)

// TreeEncoder draws the query tree with box-drawing guides:
//
//	Or
//	├── Atom < a
//	└── And
//	    ├── Atom < b
//	    └── Atom < c
type TreeEncoder struct {
	w      io.Writer
	styled bool
	result *iq.Result
}

func NewTreeEncoder(w io.Writer, styled bool) *TreeEncoder {
	return &TreeEncoder{w: w, styled: styled}
}

func (e *TreeEncoder) Encode(r *iq.Result) error {
	e.result = r
	return write(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	switch e.result.State {
	case iq.StateEmpty:
		sb.WriteString(e.style(guideStyle, "(empty query)"))
		sb.WriteByte('\n')
	case iq.StateMalformed:
		sb.WriteString(e.style(errorStyle, iq.KindMalformed.String()))
		sb.WriteByte('\n')
	default:
		e.writeNode(&sb, e.result.Root, "", "")
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeNode(sb *strings.Builder, n *iq.Node, prefix, childPrefix string) {
	sb.WriteString(e.style(guideStyle, prefix))
	sb.WriteString(e.style(kindStyle, n.Kind.String()))
	if n.Kind == iq.KindAtom {
		sb.WriteByte(' ')
		sb.WriteString(e.style(relStyle, string(n.Rel)))
		sb.WriteByte(' ')
		sb.WriteString(e.style(classStyle, iq.QuoteName(n.Class)))
	}
	sb.WriteByte('\n')

	for i, c := range n.Children {
		if i == len(n.Children)-1 {
			e.writeNode(sb, c, childPrefix+"└── ", childPrefix+"    ")
		} else {
			e.writeNode(sb, c, childPrefix+"├── ", childPrefix+"│   ")
		}
	}
}

func (e *TreeEncoder) style(s lipgloss.Style, text string) string {
	if !e.styled || text == "" {
		return text
	}
	return s.Render(text)
}
