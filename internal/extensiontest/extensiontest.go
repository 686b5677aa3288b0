// Package extensiontest provides tests to exercise the retrying helpers
// against a live browser. These tests are in a separate package to allow
// other test harnesses to validate their behavior.
package extensiontest

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blang/semver"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
	"github.com/tebeka/selenium/sauce"

	seleniumext "github.com/JBelisle/selenium-automation-extensions"
)

type Config struct {
	Addr, Browser, Path, ServerURL string
	Sauce                          *sauce.Capabilities
	SeleniumVersion                semver.Version
	ServiceOptions                 []selenium.ServiceOption
	Headless                       bool
}

func runTest(f func(*testing.T, Config), c Config) func(*testing.T) {
	return func(t *testing.T) {
		f(t, c)
	}
}

var NewRemote = func(_ *testing.T, caps selenium.Capabilities, addr string) (selenium.WebDriver, error) {
	return selenium.NewRemote(caps, addr)
}

func newRemote(t *testing.T, caps selenium.Capabilities, c Config) selenium.WebDriver {
	wd, err := NewRemote(t, caps, c.Addr)
	if err != nil {
		t.Fatalf("NewRemote(%+v, %q) returned error: %v", caps, c.Addr, err)
	}
	return wd
}

// newSession starts a browser session and wraps it with a short retry delay
// so that a full budget stays within test-friendly wall time.
func newSession(t *testing.T, c Config) (selenium.WebDriver, *seleniumext.Session) {
	wd := newRemote(t, newTestCapabilities(t, c), c)
	opts := []seleniumext.Option{seleniumext.WithDelay(100 * time.Millisecond)}
	if testing.Verbose() {
		opts = append(opts, seleniumext.WithLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})))
	}
	return wd, seleniumext.New(wd, opts...)
}

func newTestCapabilities(t *testing.T, c Config) selenium.Capabilities {
	caps := selenium.Capabilities{
		"browserName": c.Browser,
	}
	switch c.Browser {
	case "chrome":
		chrCaps := chrome.Capabilities{
			Path: c.Path,
			Args: []string{
				// This flag is needed to test against Chrome binaries that are not the
				// default installation. The sandbox requires a setuid binary.
				"--no-sandbox",
			},
			W3C: true,
		}
		if c.Headless {
			chrCaps.Args = append(chrCaps.Args, "--headless")
		}
		caps.AddChrome(chrCaps)
	case "firefox":
		f := firefox.Capabilities{}
		if c.Path != "" {
			p, err := filepath.Abs(c.Path)
			if err != nil {
				panic(err)
			}
			f.Binary = p
		}
		if testing.Verbose() {
			f.Log = &firefox.Log{
				Level: firefox.Trace,
			}
		}
		if c.Headless {
			f.Args = append(f.Args, "-headless")
		}
		caps.AddFirefox(f)
	case "htmlunit":
		caps["javascriptEnabled"] = true
	}

	if c.Sauce != nil {
		m, err := c.Sauce.ToMap()
		if err != nil {
			t.Fatalf("Error obtaining map for sauce.Capabilities: %s", err)
		}
		for k, v := range m {
			caps[k] = v
		}
		if c.SeleniumVersion.Major > 0 {
			caps["seleniumVersion"] = c.SeleniumVersion.String()
		}
		caps["name"] = t.Name()
	}

	return caps
}

func quitRemote(t *testing.T, wd selenium.WebDriver) {
	if err := wd.Quit(); err != nil {
		t.Errorf("wd.Quit() returned error: %v", err)
	}
}

func RunCommonTests(t *testing.T, c Config) {
	t.Run("Locate", runTest(testLocate, c))
	t.Run("Displayed", runTest(testDisplayed, c))
	t.Run("WaitDisplayed", runTest(testWaitDisplayed, c))
	t.Run("ScrollIntoView", runTest(testScrollIntoView, c))
	t.Run("Texts", runTest(testTexts, c))
	t.Run("FieldText", runTest(testFieldText, c))
	t.Run("FieldCheckbox", runTest(testFieldCheckbox, c))
	t.Run("FieldRadio", runTest(testFieldRadio, c))
	t.Run("FieldDropdown", runTest(testFieldDropdown, c))
	t.Run("FieldMultiSelect", runTest(testFieldMultiSelect, c))
	t.Run("SelectElement", runTest(testSelectElement, c))
	t.Run("ClickGestures", runTest(testClickGestures, c))
	t.Run("ClickAndConfirmDisplayed", runTest(testClickAndConfirmDisplayed, c))
	t.Run("ClickAndConfirmStale", runTest(testClickAndConfirmStale, c))
	t.Run("ClickAndConfirmAlert", runTest(testClickAndConfirmAlert, c))
}

func testLocate(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	el, err := ext.Locate(seleniumext.ByID("user"))
	if err != nil {
		t.Fatalf("ext.Locate(user) returned error: %v", err)
	}
	if tag, err := el.TagName(); err != nil || tag != "input" {
		t.Fatalf("el.TagName() = %q, %v; want input, nil", tag, err)
	}

	opts, err := ext.LocateAll(seleniumext.ByCSS("#city option"))
	if err != nil {
		t.Fatalf("ext.LocateAll(#city option) returned error: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("len(opts) = %d, want 3", len(opts))
	}

	quick := seleniumext.New(wd,
		seleniumext.WithDelay(10*time.Millisecond), seleniumext.WithFindRetries(2))
	if _, err := quick.Locate(seleniumext.ByID("no-such-id")); !seleniumext.IsNotFound(err) {
		t.Fatalf("quick.Locate(no-such-id) returned %v, want a not-found error", err)
	}
}

func testDisplayed(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	clickURL := c.ServerURL + "/click"
	if err := wd.Get(clickURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", clickURL, err)
	}

	if shown, err := ext.ElementIsDisplayed(seleniumext.ByID("count")); err != nil || !shown {
		t.Fatalf("ElementIsDisplayed(count) = %t, %v; want true, nil", shown, err)
	}
	if shown, err := ext.ElementIsDisplayed(seleniumext.ByID("banner")); err != nil || shown {
		t.Fatalf("ElementIsDisplayed(banner) = %t, %v; want false, nil", shown, err)
	}
	if shown, err := ext.ElementIsDisplayed(seleniumext.ByID("no-such-id")); err != nil || shown {
		t.Fatalf("ElementIsDisplayed(no-such-id) = %t, %v; want false, nil", shown, err)
	}
}

func testWaitDisplayed(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	clickURL := c.ServerURL + "/click"
	if err := wd.Get(clickURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", clickURL, err)
	}

	if err := ext.Click(seleniumext.ByID("reveal"), seleniumext.SingleClick); err != nil {
		t.Fatalf("ext.Click(reveal) returned error: %v", err)
	}
	if shown, err := ext.WaitDisplayed(seleniumext.ByID("banner"), true); err != nil || !shown {
		t.Fatalf("WaitDisplayed(banner, true) = %t, %v; want true, nil", shown, err)
	}
}

func testScrollIntoView(t *testing.T, c Config) {
	if c.Browser == "htmlunit" {
		t.Skip("Skipping on htmlunit, which does not lay out pages and so never scrolls")
	}
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	clickURL := c.ServerURL + "/click"
	if err := wd.Get(clickURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", clickURL, err)
	}

	if err := ext.ScrollIntoView(seleniumext.ByID("gesture")); err != nil {
		t.Fatalf("ext.ScrollIntoView(gesture) returned error: %v", err)
	}
	offset, err := wd.ExecuteScript("return window.pageYOffset;", nil)
	if err != nil {
		t.Fatalf("wd.ExecuteScript(pageYOffset) returned error: %v", err)
	}
	if y, ok := offset.(float64); !ok || y <= 0 {
		t.Fatalf("window.pageYOffset = %v, want a positive number", offset)
	}
}

func testTexts(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	textsURL := c.ServerURL + "/texts"
	if err := wd.Get(textsURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", textsURL, err)
	}

	// The entries are injected 300ms after load, so a single read would
	// come back empty.
	got, err := ext.Texts(seleniumext.ByCSS("#feed .entry"))
	if err != nil {
		t.Fatalf("ext.Texts(#feed .entry) returned error: %v", err)
	}
	want := []string{"alpha", "beta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}

	got, err = ext.TextsNonBlank(seleniumext.ByCSS("#feed .entry"))
	if err != nil {
		t.Fatalf("ext.TextsNonBlank(#feed .entry) returned error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("non-blank texts mismatch (-want +got):\n%s", diff)
	}
}

func testFieldText(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	fields := []struct {
		id    string
		kind  seleniumext.FieldKind
		value string
	}{
		{"user", seleniumext.Text, "gopher"},
		{"secret", seleniumext.Password, "s3cret"},
	}
	for _, f := range fields {
		if err := ext.SetFieldValue(seleniumext.ByID(f.id), f.kind, f.value); err != nil {
			t.Fatalf("SetFieldValue(%s) returned error: %v", f.id, err)
		}
		got, err := ext.FieldValue(seleniumext.ByID(f.id), f.kind)
		if err != nil {
			t.Fatalf("FieldValue(%s) returned error: %v", f.id, err)
		}
		if got != f.value {
			t.Fatalf("FieldValue(%s) = %q, want %q", f.id, got, f.value)
		}
	}
}

func testFieldCheckbox(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	box := seleniumext.ByID("subscribe")
	for _, want := range []string{"true", "true", "false"} {
		if err := ext.SetFieldValue(box, seleniumext.Checkbox, want); err != nil {
			t.Fatalf("SetFieldValue(subscribe, %s) returned error: %v", want, err)
		}
		got, err := ext.FieldValue(box, seleniumext.Checkbox)
		if err != nil {
			t.Fatalf("FieldValue(subscribe) returned error: %v", err)
		}
		if got != want {
			t.Fatalf("FieldValue(subscribe) = %q, want %q", got, want)
		}
	}
}

func testFieldRadio(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	red := seleniumext.ByID("color-red")
	blue := seleniumext.ByID("color-blue")
	if err := ext.SetFieldValue(red, seleniumext.RadioButton, "true"); err != nil {
		t.Fatalf("SetFieldValue(color-red) returned error: %v", err)
	}
	if got, err := ext.FieldValue(red, seleniumext.RadioButton); err != nil || got != "true" {
		t.Fatalf("FieldValue(color-red) = %q, %v; want true, nil", got, err)
	}

	// Selecting the other button of the group must unselect the first.
	if err := ext.SetFieldValue(blue, seleniumext.RadioButton, "true"); err != nil {
		t.Fatalf("SetFieldValue(color-blue) returned error: %v", err)
	}
	if got, err := ext.FieldValue(red, seleniumext.RadioButton); err != nil || got != "false" {
		t.Fatalf("FieldValue(color-red) = %q, %v; want false after selecting blue", got, err)
	}
}

func testFieldDropdown(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	city := seleniumext.ByID("city")
	if got, err := ext.FieldValue(city, seleniumext.Dropdown); err != nil || got != "Berlin" {
		t.Fatalf("FieldValue(city) = %q, %v; want Berlin, nil", got, err)
	}
	if err := ext.SetFieldValue(city, seleniumext.Dropdown, "Lisbon"); err != nil {
		t.Fatalf("SetFieldValue(city, Lisbon) returned error: %v", err)
	}
	if got, err := ext.FieldValue(city, seleniumext.Dropdown); err != nil || got != "Lisbon" {
		t.Fatalf("FieldValue(city) = %q, %v; want Lisbon, nil", got, err)
	}
}

func testFieldMultiSelect(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	tags := seleniumext.ByID("tags")
	got, err := ext.FieldValues(tags, seleniumext.MultiSelectBox)
	if err != nil {
		t.Fatalf("FieldValues(tags) returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Go", "Test"}, got); diff != "" {
		t.Fatalf("initial selection mismatch (-want +got):\n%s", diff)
	}

	if err := ext.SetFieldValue(tags, seleniumext.MultiSelectBox, "Web"); err != nil {
		t.Fatalf("SetFieldValue(tags, Web) returned error: %v", err)
	}
	got, err = ext.FieldValues(tags, seleniumext.MultiSelectBox)
	if err != nil {
		t.Fatalf("FieldValues(tags) returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Go", "Web", "Test"}, got); diff != "" {
		t.Fatalf("selection after adding Web mismatch (-want +got):\n%s", diff)
	}
}

func testSelectElement(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	formURL := c.ServerURL + "/form"
	if err := wd.Get(formURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", formURL, err)
	}

	el, err := ext.Locate(seleniumext.ByID("city"))
	if err != nil {
		t.Fatalf("ext.Locate(city) returned error: %v", err)
	}
	sel, err := seleniumext.NewSelect(el)
	if err != nil {
		t.Fatalf("NewSelect(city) returned error: %v", err)
	}
	if sel.IsMultiple() {
		t.Fatal("IsMultiple() = true for a plain select")
	}
	opts, err := sel.Options()
	if err != nil {
		t.Fatalf("sel.Options() returned error: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("len(opts) = %d, want 3", len(opts))
	}
	first, err := sel.FirstSelectedOption()
	if err != nil {
		t.Fatalf("sel.FirstSelectedOption() returned error: %v", err)
	}
	if text, err := first.Text(); err != nil || text != "Berlin" {
		t.Fatalf("first.Text() = %q, %v; want Berlin, nil", text, err)
	}
	if err := sel.SelectByValue("ams"); err != nil {
		t.Fatalf("sel.SelectByValue(ams) returned error: %v", err)
	}
	if got, err := ext.FieldValue(seleniumext.ByID("city"), seleniumext.Dropdown); err != nil || got != "Amsterdam" {
		t.Fatalf("FieldValue(city) = %q, %v; want Amsterdam, nil", got, err)
	}
	if err := sel.DeselectAll(); err == nil {
		t.Fatal("sel.DeselectAll() on a single select did not fail")
	}
}

func testClickGestures(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	clickURL := c.ServerURL + "/click"
	if err := wd.Get(clickURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", clickURL, err)
	}

	if err := ext.Click(seleniumext.ByID("count"), seleniumext.SingleClick); err != nil {
		t.Fatalf("ext.Click(count) returned error: %v", err)
	}
	if got, err := ext.Text(seleniumext.ByID("count")); err != nil || got != "1" {
		t.Fatalf("Text(count) = %q, %v; want 1, nil", got, err)
	}

	if c.Browser == "htmlunit" {
		t.Skip("Skipping double and context clicks on htmlunit")
	}
	if c.Browser == "firefox" && c.SeleniumVersion.Major == 0 {
		t.Skip("Geckodriver does not implement the legacy endpoints behind DoubleClick and ContextClick")
	}

	if err := ext.Click(seleniumext.ByID("gesture"), seleniumext.DoubleClick); err != nil {
		t.Fatalf("ext.Click(gesture, double) returned error: %v", err)
	}
	if got, err := ext.Text(seleniumext.ByID("status")); err != nil || got != "double" {
		t.Fatalf("Text(status) = %q, %v; want double, nil", got, err)
	}

	if err := ext.Click(seleniumext.ByID("gesture"), seleniumext.ContextClick); err != nil {
		t.Fatalf("ext.Click(gesture, context) returned error: %v", err)
	}
	if got, err := ext.Text(seleniumext.ByID("status")); err != nil || got != "context" {
		t.Fatalf("Text(status) = %q, %v; want context, nil", got, err)
	}
}

func testClickAndConfirmDisplayed(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	clickURL := c.ServerURL + "/click"
	if err := wd.Get(clickURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", clickURL, err)
	}

	ok, err := ext.ClickAndConfirmDisplayed(
		seleniumext.ByID("reveal"), seleniumext.SingleClick,
		seleniumext.ByID("banner"), true)
	if err != nil {
		t.Fatalf("ClickAndConfirmDisplayed(reveal) returned error: %v", err)
	}
	if !ok {
		t.Fatal("ClickAndConfirmDisplayed(reveal) = false, want the banner confirmed")
	}
}

func testClickAndConfirmStale(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	staleURL := c.ServerURL + "/stale"
	if err := wd.Get(staleURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", staleURL, err)
	}

	rows := seleniumext.ByCSS("#rows .row")
	ok, err := ext.ClickAndConfirmStale(seleniumext.ByID("refresh"), seleniumext.SingleClick, rows)
	if err != nil {
		t.Fatalf("ClickAndConfirmStale(refresh) returned error: %v", err)
	}
	if !ok {
		t.Fatal("ClickAndConfirmStale(refresh) = false, want the rows replaced")
	}
	got, err := ext.Texts(rows)
	if err != nil {
		t.Fatalf("ext.Texts(rows) returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"three"}, got); diff != "" {
		t.Fatalf("rows after refresh mismatch (-want +got):\n%s", diff)
	}
}

func testClickAndConfirmAlert(t *testing.T, c Config) {
	wd, ext := newSession(t, c)
	defer quitRemote(t, wd)

	alertURL := c.ServerURL + "/alert"
	ask := seleniumext.ByID("ask")
	result := seleniumext.ByID("result")

	if err := wd.Get(alertURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", alertURL, err)
	}
	ok, err := ext.ClickAndConfirmAlert(ask, seleniumext.SingleClick, seleniumext.AlertAccept)
	if err != nil || !ok {
		t.Fatalf("ClickAndConfirmAlert(accept) = %t, %v; want true, nil", ok, err)
	}
	if got, err := ext.Text(result); err != nil || got != "accepted" {
		t.Fatalf("Text(result) = %q, %v; want accepted, nil", got, err)
	}

	if err := wd.Get(alertURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", alertURL, err)
	}
	ok, err = ext.ClickAndConfirmAlert(ask, seleniumext.SingleClick, seleniumext.AlertDismiss)
	if err != nil || !ok {
		t.Fatalf("ClickAndConfirmAlert(dismiss) = %t, %v; want true, nil", ok, err)
	}
	if got, err := ext.Text(result); err != nil || got != "dismissed" {
		t.Fatalf("Text(result) = %q, %v; want dismissed, nil", got, err)
	}

	if err := wd.Get(alertURL); err != nil {
		t.Fatalf("wd.Get(%q) returned error: %v", alertURL, err)
	}
	ok, err = ext.ClickAndConfirmAlert(ask, seleniumext.SingleClick, seleniumext.AlertLeaveOpen)
	if err != nil || !ok {
		t.Fatalf("ClickAndConfirmAlert(leave open) = %t, %v; want true, nil", ok, err)
	}
	text, err := wd.AlertText()
	if err != nil {
		t.Fatalf("wd.AlertText() returned error: %v; the alert should still be open", err)
	}
	if text != "Proceed?" {
		t.Fatalf("wd.AlertText() = %q, want Proceed?", text)
	}
	if err := wd.AcceptAlert(); err != nil {
		t.Fatalf("wd.AcceptAlert() returned error: %v", err)
	}
}

var homePage = `
<html>
<head>
	<title>Extensions Test Suite</title>
</head>
<body>
	The home page.
	<a href="/form">form</a>
	<a href="/click">click</a>
	<a href="/stale">stale</a>
	<a href="/alert">alert</a>
	<a href="/texts">texts</a>
</body>
</html>
`

var formPage = `
<html>
<head>
	<title>Extensions Test Suite - Form Page</title>
</head>
<body>
	<form action="javascript:void(0);">
		<input id="user" name="user" type="text" value="initial" /> <br />
		<input id="secret" name="secret" type="password" /> <br />
		<input id="subscribe" name="subscribe" type="checkbox" /> Subscribe. <br />
		<input id="color-red" name="color" type="radio" value="red" /> Red.
		<input id="color-blue" name="color" type="radio" value="blue" /> Blue. <br />
		<select id="city" name="city">
			<option value="ams">Amsterdam</option>
			<option value="ber" selected>Berlin</option>
			<option value="lis">Lisbon</option>
		</select>
		<select id="tags" name="tags" multiple>
			<option value="go" selected>Go</option>
			<option value="web">Web</option>
			<option value="test" selected>Test</option>
		</select>
	</form>
</body>
</html>
`

var clickPage = `
<html>
<head>
	<title>Extensions Test Suite - Click Page</title>
	<style>#banner { display: none; }</style>
	<script>
		function reveal() {
			setTimeout(function() {
				document.getElementById('banner').style.display = 'block';
			}, 300);
		}
		function count() {
			var b = document.getElementById('count');
			b.textContent = Number(b.textContent) + 1;
		}
	</script>
</head>
<body>
	<button id="count" onclick="count()">0</button>
	<button id="reveal" onclick="reveal()">Reveal</button>
	<div id="banner">Revealed.</div>
	<div style="height: 2000px;"></div>
	<div id="gesture"
		ondblclick="document.getElementById('status').textContent = 'double';"
		oncontextmenu="document.getElementById('status').textContent = 'context'; return false;">
		The gesture target.
	</div>
	<div id="status"></div>
</body>
</html>
`

var stalePage = `
<html>
<head>
	<title>Extensions Test Suite - Stale Page</title>
	<script>
		function refresh() {
			setTimeout(function() {
				document.getElementById('rows').innerHTML = "<li class='row'>three</li>";
			}, 300);
		}
	</script>
</head>
<body>
	<ul id="rows">
		<li class="row">one</li>
		<li class="row">two</li>
	</ul>
	<button id="refresh" onclick="refresh()">Refresh</button>
</body>
</html>
`

var alertPage = `
<html>
<head>
	<title>Extensions Test Suite - Alert Page</title>
	<script>
		function ask() {
			setTimeout(function() {
				var ok = confirm('Proceed?');
				document.getElementById('result').textContent = ok ? 'accepted' : 'dismissed';
			}, 200);
		}
	</script>
</head>
<body>
	<button id="ask" onclick="ask()">Ask</button>
	<div id="result"></div>
</body>
</html>
`

var textsPage = `
<html>
<head>
	<title>Extensions Test Suite - Texts Page</title>
	<script>
		window.onload = function() {
			setTimeout(function() {
				document.getElementById('feed').innerHTML =
					"<li class='entry'>alpha</li><li class='entry'>beta</li>";
			}, 300);
		};
	</script>
</head>
<body>
	<ul id="feed"></ul>
</body>
</html>
`

var Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	page, ok := map[string]string{
		"/":      homePage,
		"/form":  formPage,
		"/click": clickPage,
		"/stale": stalePage,
		"/alert": alertPage,
		"/texts": textsPage,
	}[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, page)
})
