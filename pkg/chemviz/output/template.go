package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/chemviz-go/pkg/chemviz/frame"
	"github.com/ukaji3/chemviz-go/pkg/chemviz/models"
)

// Token is a literal placeholder recognized in page templates.
type Token string

const (
	TokenTitle     Token = "__TITLE__"
	TokenXValues   Token = "__X_VALUES__"
	TokenYValues   Token = "__Y_VALUES__"
	TokenZValues   Token = "__Z_VALUES__"
	TokenImageData Token = "__IMAGE_DATA__"
	TokenYieldData Token = "__YIELD_DATA__"
)

// Tokens lists every recognized placeholder.
var Tokens = []Token{TokenTitle, TokenXValues, TokenYValues, TokenZValues, TokenImageData, TokenYieldData}

// Binding assigns a replacement to a token. Raw text is inserted as is;
// otherwise Value is inserted as a JSON literal.
type Binding struct {
	Token Token
	Raw   string
	Value interface{}
}

// Context supplies the bindings of one rendered page.
type Context interface {
	Bindings() []Binding
}

// BarChartContext fills a bar chart page.
type BarChartContext struct {
	Title     string
	XValues   []string
	YValues   []frame.Number
	Images    models.OrderedImages
	YieldData []models.YieldTrace
}

// Bindings implements Context.
func (c *BarChartContext) Bindings() []Binding {
	return []Binding{
		{Token: TokenTitle, Raw: c.Title},
		{Token: TokenXValues, Value: c.XValues},
		{Token: TokenYValues, Value: c.YValues},
		{Token: TokenImageData, Value: c.Images},
		{Token: TokenYieldData, Value: c.YieldData},
	}
}

// HeatmapContext fills a heatmap page.
type HeatmapContext struct {
	Title  string
	Matrix *models.HeatmapMatrix
}

// Bindings implements Context.
func (c *HeatmapContext) Bindings() []Binding {
	return []Binding{
		{Token: TokenTitle, Raw: c.Title},
		{Token: TokenZValues, Value: c.Matrix.ZValues},
		{Token: TokenXValues, Value: c.Matrix.XValues},
		{Token: TokenYValues, Value: c.Matrix.YValues},
		{Token: TokenImageData, Value: c.Matrix.Images},
	}
}

// MissingTokenError reports placeholders a context needs but the
// template does not contain.
type MissingTokenError struct {
	Template string
	Tokens   []Token
}

func (e *MissingTokenError) Error() string {
	names := make([]string, len(e.Tokens))
	for i, t := range e.Tokens {
		names[i] = string(t)
	}
	return fmt.Sprintf("template %s: missing placeholder(s) %s", e.Template, strings.Join(names, ", "))
}

// Template is a page with literal placeholder tokens.
type Template struct {
	name string
	text string
}

// NewTemplate returns a template named name with the given text.
func NewTemplate(name, text string) *Template {
	return &Template{name: name, text: text}
}

// LoadTemplate reads a template file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewTemplate(path, string(data)), nil
}

// Tokens returns the recognized placeholders present in the template.
func (t *Template) Tokens() []Token {
	var out []Token
	for _, tok := range Tokens {
		if strings.Contains(t.text, string(tok)) {
			out = append(out, tok)
		}
	}
	return out
}

// Render substitutes every binding of ctx in a single pass. All bound
// tokens must occur in the template.
func (t *Template) Render(ctx Context) ([]byte, error) {
	bindings := ctx.Bindings()

	var missing []Token
	pairs := make([]string, 0, 2*len(bindings))
	for _, b := range bindings {
		if !strings.Contains(t.text, string(b.Token)) {
			missing = append(missing, b.Token)
			continue
		}
		repl := b.Raw
		if b.Value != nil {
			if err := CheckFinite(b.Value); err != nil {
				return nil, err
			}
			data, err := json.Marshal(b.Value)
			if err != nil {
				return nil, &SerializationError{Err: err}
			}
			repl = string(data)
		}
		pairs = append(pairs, string(b.Token), repl)
	}
	if len(missing) > 0 {
		return nil, &MissingTokenError{Template: t.name, Tokens: missing}
	}
	return []byte(strings.NewReplacer(pairs...).Replace(t.text)), nil
}
