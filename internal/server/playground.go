package server

import (
	"embed"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	rendertemplate "github.com/goliatone/go-formcheck/pkg/render/template"
	"github.com/goliatone/go-formcheck/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/widgets"
)

//go:embed templates/*.tmpl
var pageTemplates embed.FS

//go:embed static/gallery
var galleryFiles embed.FS

var (
	galleryImages = []string{"/gallery/lonewolf.svg", "/gallery/zorin.svg", "/gallery/beauty.svg"}
	tabIDs        = []string{"tab1", "tab2", "tab3"}
	sectionTitles = []string{"Section 1", "Section 2", "Section 3"}
)

// playground renders the widget page. Widget state travels in the query
// string, so every link on the page carries the full state forward. Clicks,
// double clicks and presses are one-shot events: they shape the page they
// land on and are dropped from the links it renders.
type playground struct {
	templates rendertemplate.TemplateRenderer
	now       func() time.Time
}

func newPlayground() (*playground, error) {
	engine, err := gotemplate.New(gotemplate.WithFS(pageTemplates))
	if err != nil {
		return nil, fmt.Errorf("server: playground templates: %w", err)
	}
	return &playground{templates: engine, now: time.Now}, nil
}

type playgroundState struct {
	Image   int
	Color   int
	Text    bool
	Tab     string
	Section int
	Hover   bool
	Key     string
	Code    string

	Clicked bool
	Secret  string
	Held    time.Duration
}

func parsePlaygroundState(query url.Values) playgroundState {
	state := playgroundState{Section: -1}
	state.Image, _ = strconv.Atoi(query.Get("image"))
	state.Color, _ = strconv.Atoi(query.Get("color"))
	state.Text = query.Get("text") == "on"
	state.Tab = query.Get("tab")
	if raw := query.Get("section"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			state.Section = n
		}
	}
	state.Hover = query.Get("hover") == "on"
	state.Key = query.Get("key")
	state.Code = query.Get("code")

	state.Clicked = query.Get("clicked") == "1"
	state.Secret = query.Get("secret")
	if ms, err := strconv.Atoi(query.Get("held")); err == nil && ms > 0 {
		state.Held = time.Duration(ms) * time.Millisecond
	}
	return state
}

// persistent drops the one-shot events.
func (s playgroundState) persistent() playgroundState {
	s.Clicked = false
	s.Secret = ""
	s.Held = 0
	return s
}

func (s playgroundState) values() url.Values {
	values := url.Values{}
	values.Set("image", strconv.Itoa(s.Image))
	values.Set("color", strconv.Itoa(s.Color))
	if s.Text {
		values.Set("text", "on")
	}
	if s.Tab != "" {
		values.Set("tab", s.Tab)
	}
	if s.Section >= 0 {
		values.Set("section", strconv.Itoa(s.Section))
	}
	if s.Hover {
		values.Set("hover", "on")
	}
	if s.Key != "" {
		values.Set("key", s.Key)
		values.Set("code", s.Code)
	}
	if s.Clicked {
		values.Set("clicked", "1")
	}
	if s.Secret != "" {
		values.Set("secret", s.Secret)
	}
	if s.Held > 0 {
		values.Set("held", strconv.FormatInt(s.Held.Milliseconds(), 10))
	}
	return values
}

func (s playgroundState) query() string {
	return "?" + s.values().Encode()
}

type linkView struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type fieldView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p *playground) render(query url.Values) ([]byte, error) {
	now := p.now()
	event := parsePlaygroundState(query)
	state := event.persistent()

	gallery, err := widgets.NewGallery(galleryImages...)
	if err != nil {
		return nil, err
	}
	state.Image = gallery.At(state.Image)
	before, after := *gallery, *gallery
	prev, next := state, state
	prev.Image = before.Prev()
	next.Image = after.Next()

	cycle, err := widgets.NewCycle(widgets.DefaultColors...)
	if err != nil {
		return nil, err
	}
	cycle.At(state.Color)
	state.Color = cycle.Index
	following := *cycle
	following.Next()
	nextColor := state
	nextColor.Color = following.Index

	toggle := widgets.NewTextToggle()
	toggle.Set = state.Text
	flipped := state
	flipped.Text = !state.Text

	hover := widgets.NewHover()
	hover.Over = state.Hover
	hovered := state
	hovered.Hover = !state.Hover

	var echo widgets.KeyEcho
	if state.Key != "" {
		echo.Press(state.Key, state.Code)
		state.Code = echo.Code
	}
	var echoFields []fieldView
	for name, vals := range state.values() {
		if name == "key" || name == "code" {
			continue
		}
		echoFields = append(echoFields, fieldView{Name: name, Value: vals[0]})
	}
	sort.Slice(echoFields, func(i, j int) bool { return echoFields[i].Name < echoFields[j].Name })

	press := widgets.NewPress()
	switch {
	case event.Secret == "double":
		press.DoubleClick(now)
	case event.Held > 0:
		press.Down(now.Add(-event.Held))
		press.Up(now)
	}
	var hideAfter string
	if d := press.HideAfter(now); d > 0 {
		hideAfter = strconv.FormatInt(d.Milliseconds(), 10)
	}
	doubled, held := state, state
	doubled.Secret = "double"
	held.Held = widgets.LongPressThreshold

	clicked := state
	clicked.Clicked = true
	var notice string
	if event.Clicked {
		notice = widgets.ClickMessage
	}

	tabs, err := widgets.NewTabs(tabIDs...)
	if err != nil {
		return nil, err
	}
	_ = tabs.Select(state.Tab)
	state.Tab = tabs.Active
	tabLinks := make([]linkView, 0, len(tabs.IDs))
	for i, id := range tabs.IDs {
		next := state
		next.Tab = id
		tabLinks = append(tabLinks, linkView{Label: fmt.Sprintf("Tab %d", i+1), Href: next.query(), Active: tabs.IsActive(id)})
	}

	accordion, err := widgets.NewAccordion(sectionTitles...)
	if err != nil {
		return nil, err
	}
	if state.Section >= 0 {
		if _, err := accordion.Toggle(state.Section); err != nil {
			state.Section = -1
		}
	}
	sections := make([]linkView, 0, len(accordion.Sections))
	for i, title := range accordion.Sections {
		toggled := *accordion
		_, _ = toggled.Toggle(i)
		next := state
		next.Section = toggled.Open
		sections = append(sections, linkView{Label: title, Href: next.query(), Active: accordion.IsOpen(i)})
	}

	view := map[string]any{
		"stylesheet": "/assets/" + vanilla.StylesheetName,
		"script":     "/assets/" + vanilla.RuntimeScriptName,
		"click": map[string]any{
			"notice": notice,
			"href":   clicked.query(),
		},
		"hover": map[string]any{
			"label": hover.Label(),
			"href":  hovered.query(),
		},
		"echo": map[string]any{
			"text":   echo.Text(),
			"key":    echo.Key,
			"fields": echoFields,
		},
		"secret": map[string]any{
			"prompt":        widgets.SecretPrompt,
			"label":         press.Label(now),
			"message":       press.Message(now),
			"hide_after_ms": hideAfter,
			"double_href":   doubled.query(),
			"held_href":     held.query(),
		},
		"gallery": map[string]any{
			"src":  gallery.Current(),
			"alt":  gallery.Alt(),
			"prev": prev.query(),
			"next": next.query(),
		},
		"color": map[string]any{
			"class": cycle.Class(),
			"label": cycle.Label(),
			"href":  nextColor.query(),
		},
		"text": map[string]any{
			"label": toggle.Label(),
			"href":  flipped.query(),
		},
		"active_tab": tabs.Active,
		"tabs":       tabLinks,
		"sections":   sections,
	}
	out, err := p.templates.RenderTemplate("templates/playground.tmpl", view)
	if err != nil {
		return nil, fmt.Errorf("server: render playground: %w", err)
	}
	return []byte(out), nil
}
