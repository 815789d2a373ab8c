package element

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScalarRoundTrip(t *testing.T) {
	s := NewString("title", "hello")
	if err := s.SetValue("world"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if got, _ := s.Value(); got != "world" {
		t.Fatalf("string round-trip: got %q", got)
	}

	i := NewInt("count", 1)
	if err := i.SetValue(42); err != nil {
		t.Fatalf("set int: %v", err)
	}
	if got, _ := i.Value(); got != 42 {
		t.Fatalf("int round-trip: got %d", got)
	}

	f := NewFloat("ratio", 0)
	if err := f.SetValue(2.5); err != nil {
		t.Fatalf("set float: %v", err)
	}
	if got, _ := f.Value(); got != 2.5 {
		t.Fatalf("float round-trip: got %v", got)
	}

	b := NewBool("enabled", false)
	if err := b.SetValue(true); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	if got, _ := b.Value(); !got {
		t.Fatalf("bool round-trip: got false")
	}
}

func TestUninitializedElementFails(t *testing.T) {
	var s String
	if _, err := s.Value(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized on get, got %v", err)
	}
	if err := s.SetValue("x"); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized on set, got %v", err)
	}
}

func TestLabelFallsBackToName(t *testing.T) {
	s := NewString("title", "")
	if s.Label() != "title" {
		t.Fatalf("label fallback: got %q", s.Label())
	}
	labeled := NewString("title", "", WithLabel("Title"), WithHelp("The article title"))
	if labeled.Label() != "Title" || labeled.Help() != "The article title" {
		t.Fatalf("label/help options not applied: %q %q", labeled.Label(), labeled.Help())
	}
}

func TestChangeNotification(t *testing.T) {
	s := NewString("title", "")
	fired := 0
	s.OnChange(func() { fired++ })
	_ = s.SetValue("a")
	_ = s.SetValue("b")
	if fired != 2 {
		t.Fatalf("expected 2 change events, got %d", fired)
	}
}

func TestListRoundTrip(t *testing.T) {
	l := NewList("tags", []string{"go", "forms"})
	got, err := l.Value()
	if err != nil {
		t.Fatalf("list value: %v", err)
	}
	if diff := cmp.Diff([]string{"go", "forms"}, got); diff != "" {
		t.Fatalf("list round-trip mismatch (-want +got):\n%s", diff)
	}

	if err := l.SetValue(nil); err != nil {
		t.Fatalf("clear list: %v", err)
	}
	if got, _ := l.Value(); got != nil {
		t.Fatalf("cleared list should be empty, got %v", got)
	}
}

func TestListSeparatorIsLossy(t *testing.T) {
	// Entries containing the separator are corrupted on round-trip. This is
	// the documented storage-format limitation, asserted on purpose.
	l := NewList("tags", nil)
	if err := l.SetValue([]string{"a,b", "c"}); err != nil {
		t.Fatalf("set list: %v", err)
	}
	got, _ := l.Value()
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("expected lossy split (-want +got):\n%s", diff)
	}
}

func TestDictRoundTrip(t *testing.T) {
	d := NewDict("meta", nil)
	want := map[string]any{"author": "kim", "year": 2024}
	if err := d.SetValue(want); err != nil {
		t.Fatalf("set dict: %v", err)
	}
	got, err := d.Value()
	if err != nil {
		t.Fatalf("dict value: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dict round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDictSwallowsParseFailures(t *testing.T) {
	d := NewDict("meta", nil)
	if err := d.SetText("{not: [valid"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	got, err := d.Value()
	if err != nil {
		t.Fatalf("dict value: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unparseable text should yield empty mapping, got %v", got)
	}
}

func TestDictEmptyYieldsEmptyMapping(t *testing.T) {
	d := NewDict("meta", nil)
	if err := d.SetText(""); err != nil {
		t.Fatalf("set text: %v", err)
	}
	got, _ := d.Value()
	if len(got) != 0 {
		t.Fatalf("empty cell should yield empty mapping, got %v", got)
	}
}

func TestDictAcceptsFlowStyleText(t *testing.T) {
	d := NewDict("meta", nil)
	if err := d.SetText("{author: kim, year: 2024}"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	got, _ := d.Value()
	want := map[string]any{"author": "kim", "year": 2024}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("flow-style parse mismatch (-want +got):\n%s", diff)
	}
}

func TestChoiceRequiresChoices(t *testing.T) {
	if _, err := NewChoice("env", nil, ""); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
	if _, err := NewRadio("env", []string{}, ""); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices for radio, got %v", err)
	}
	if _, err := NewMultiChoice("env", nil, nil); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices for multichoice, got %v", err)
	}
}

func TestChoiceDefaultsToFirst(t *testing.T) {
	c, err := NewChoice("env", []string{"dev", "prod"}, "")
	if err != nil {
		t.Fatalf("new choice: %v", err)
	}
	if got, _ := c.Value(); got != "dev" {
		t.Fatalf("default should be first choice, got %q", got)
	}
}

func TestChoiceRejectsOutsideValues(t *testing.T) {
	c, err := NewChoice("env", []string{"dev", "prod"}, "prod")
	if err != nil {
		t.Fatalf("new choice: %v", err)
	}
	if err := c.SetValue("staging"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if got, _ := c.Value(); got != "prod" {
		t.Fatalf("rejected set must not change value, got %q", got)
	}
	if _, err := NewChoice("env", []string{"dev"}, "prod"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for bad default, got %v", err)
	}
}

func TestChoiceRemoveSelectionFallsBack(t *testing.T) {
	c, err := NewChoice("env", []string{"dev", "prod"}, "dev")
	if err != nil {
		t.Fatalf("new choice: %v", err)
	}
	if err := c.RemoveChoice("dev"); err != nil {
		t.Fatalf("remove choice: %v", err)
	}
	if got, _ := c.Value(); got != "prod" {
		t.Fatalf("selection should fall back to first remaining, got %q", got)
	}
	if err := c.RemoveChoice("prod"); err != nil {
		t.Fatalf("remove last choice: %v", err)
	}
	if got, _ := c.Value(); got != "" {
		t.Fatalf("selection should be empty with no choices, got %q", got)
	}
}

func TestChoiceMutationErrors(t *testing.T) {
	c, _ := NewChoice("env", []string{"dev"}, "")
	if err := c.AddChoice("dev"); !errors.Is(err, ErrDuplicateChoice) {
		t.Fatalf("expected ErrDuplicateChoice, got %v", err)
	}
	if err := c.RemoveChoice("staging"); !errors.Is(err, ErrUnknownChoice) {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
}

func TestChoiceMutationNotifies(t *testing.T) {
	c, _ := NewChoice("env", []string{"dev", "prod"}, "")
	fired := 0
	c.OnChange(func() { fired++ })
	_ = c.AddChoice("staging")
	_ = c.RemoveChoice("prod")
	_ = c.ClearChoices()
	if fired != 3 {
		t.Fatalf("expected 3 change events for choice mutations, got %d", fired)
	}
}

func TestRadioMirrorsChoice(t *testing.T) {
	r, err := NewRadio("env", []string{"dev", "prod"}, "")
	if err != nil {
		t.Fatalf("new radio: %v", err)
	}
	if err := r.SetValue("nope"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := r.RemoveChoice("dev"); err != nil {
		t.Fatalf("remove choice: %v", err)
	}
	if got, _ := r.Value(); got != "prod" {
		t.Fatalf("radio fallback mismatch, got %q", got)
	}
}

func TestMultiChoiceIgnoresUnknownSelections(t *testing.T) {
	m, err := NewMultiChoice("langs", []string{"go", "rust"}, nil)
	if err != nil {
		t.Fatalf("new multichoice: %v", err)
	}
	if err := m.SetValue([]string{"x"}); err != nil {
		t.Fatalf("set selection: %v", err)
	}
	if got, _ := m.Value(); len(got) != 0 {
		t.Fatalf("unknown selection should be empty, got %v", got)
	}
	if err := m.SetValue([]string{"rust", "x", "go"}); err != nil {
		t.Fatalf("set selection: %v", err)
	}
	got, _ := m.Value()
	if diff := cmp.Diff([]string{"go", "rust"}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiChoiceRemoveDropsSelection(t *testing.T) {
	m, _ := NewMultiChoice("langs", []string{"go", "rust"}, []string{"go", "rust"})
	if err := m.RemoveChoice("rust"); err != nil {
		t.Fatalf("remove choice: %v", err)
	}
	got, _ := m.Value()
	if diff := cmp.Diff([]string{"go"}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if err := m.ClearChoices(); err != nil {
		t.Fatalf("clear choices: %v", err)
	}
	if got, _ := m.Value(); len(got) != 0 {
		t.Fatalf("cleared multichoice should have no selection, got %v", got)
	}
}

type fakeDialogs struct {
	file     string
	fileOK   bool
	dir      string
	dirOK    bool
	color    string
	colorOK  bool
	seenCur  string
	fileErr  error
	colorErr error
}

func (d *fakeDialogs) OpenFile(context.Context) (string, bool, error) {
	return d.file, d.fileOK, d.fileErr
}

func (d *fakeDialogs) OpenDirectory(context.Context) (string, bool, error) {
	return d.dir, d.dirOK, nil
}

func (d *fakeDialogs) ChooseColor(_ context.Context, current string) (string, bool, error) {
	d.seenCur = current
	return d.color, d.colorOK, d.colorErr
}

func TestFileBrowseOverwritesValue(t *testing.T) {
	f := NewFile("config", "/etc/old.conf")
	dialogs := &fakeDialogs{file: "/etc/new.conf", fileOK: true}
	if err := f.Browse(context.Background(), dialogs); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if got, _ := f.Value(); got != "/etc/new.conf" {
		t.Fatalf("browse should overwrite value, got %q", got)
	}
}

func TestFileBrowseCancelIsNoop(t *testing.T) {
	f := NewFile("config", "/etc/old.conf")
	if err := f.Browse(context.Background(), &fakeDialogs{}); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if got, _ := f.Value(); got != "/etc/old.conf" {
		t.Fatalf("cancelled browse should not change value, got %q", got)
	}
	if err := f.Browse(context.Background(), nil); !errors.Is(err, ErrNoDialogs) {
		t.Fatalf("expected ErrNoDialogs, got %v", err)
	}
}

func TestFileClearAndReset(t *testing.T) {
	f := NewFile("config", "/etc/a.conf")
	if err := f.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := f.Value(); got != "" {
		t.Fatalf("clear should empty value, got %q", got)
	}
	_ = f.SetValue("/etc/b.conf")
	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got, _ := f.Value(); got != "" {
		t.Fatalf("reset should empty value, got %q", got)
	}
}

func TestDirectoryBrowseUsesDirectoryDialog(t *testing.T) {
	d := NewDirectory("workdir", "")
	dialogs := &fakeDialogs{dir: "/srv/data", dirOK: true}
	if err := d.Browse(context.Background(), dialogs); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if got, _ := d.Value(); got != "/srv/data" {
		t.Fatalf("directory browse mismatch, got %q", got)
	}
}

func TestPathBrowseFallsBackToDirectory(t *testing.T) {
	p := NewPath("target", "")
	dialogs := &fakeDialogs{dir: "/srv/data", dirOK: true}
	if err := p.Browse(context.Background(), dialogs); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if got, _ := p.Value(); got != "/srv/data" {
		t.Fatalf("path browse should fall back to directory dialog, got %q", got)
	}
}

func TestColorNormalizesEmpty(t *testing.T) {
	c := NewColor("accent", "")
	if got, _ := c.Value(); got != DefaultColor {
		t.Fatalf("empty default should normalize to %s, got %q", DefaultColor, got)
	}
	_ = c.SetValue("#336699")
	if got, _ := c.Value(); got != "#336699" {
		t.Fatalf("color round-trip mismatch, got %q", got)
	}
	_ = c.SetValue("")
	if got, _ := c.Value(); got != DefaultColor {
		t.Fatalf("empty set should normalize to %s, got %q", DefaultColor, got)
	}
}

func TestColorSelectSeedsDialogWithCurrent(t *testing.T) {
	c := NewColor("accent", "#102030")
	dialogs := &fakeDialogs{color: "#AABBCC", colorOK: true}
	if err := c.SelectColor(context.Background(), dialogs); err != nil {
		t.Fatalf("select color: %v", err)
	}
	if dialogs.seenCur != "#102030" {
		t.Fatalf("dialog should receive current color, got %q", dialogs.seenCur)
	}
	if got, _ := c.Value(); got != "#AABBCC" {
		t.Fatalf("chosen color mismatch, got %q", got)
	}
}

func TestColorPickerNotifiesOnEveryChange(t *testing.T) {
	p := NewColorPicker("accent", "")
	if p.Kind() != KindColorPicker {
		t.Fatalf("expected colorpicker kind, got %q", p.Kind())
	}
	var swatches []string
	p.OnChange(func() {
		v, _ := p.Value()
		swatches = append(swatches, v)
	})
	_ = p.SetValue("#111111")
	_ = p.SetValue("")
	want := []string{"#111111", DefaultColor}
	if diff := cmp.Diff(want, swatches); diff != "" {
		t.Fatalf("swatch refresh mismatch (-want +got):\n%s", diff)
	}
}
