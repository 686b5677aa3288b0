package seleniumext_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/tebeka/selenium"

	seleniumext "github.com/JBelisle/selenium-automation-extensions"
)

// This example shows how to navigate to a http://play.golang.org page, input
// a short program, run it, and wait on its output pane through the retrying
// helpers.
//
// If you want to actually run this example:
//
//  1. Ensure the file paths at the top of the function are correct.
//  2. Remove the word "Example" from the comment at the bottom of the
//     function.
//  3. Run:
//     go test -test.run=Example$ github.com/JBelisle/selenium-automation-extensions
func Example() {
	// Start a Selenium WebDriver server instance (if one is not already
	// running).
	const (
		// These paths will be different on your system.
		seleniumPath    = "vendor/selenium-server-standalone-3.4.jar"
		geckoDriverPath = "vendor/geckodriver-v0.18.0-linux64"
		port            = 8080
	)
	opts := []selenium.ServiceOption{
		selenium.StartFrameBuffer(),           // Start an X frame buffer for the browser to run in.
		selenium.GeckoDriver(geckoDriverPath), // Specify the path to GeckoDriver in order to use Firefox.
		selenium.Output(os.Stderr),            // Output debug information to STDERR.
	}
	service, err := selenium.NewSeleniumService(seleniumPath, port, opts...)
	if err != nil {
		panic(err) // panic is used only as an example and is not otherwise recommended.
	}
	defer service.Stop()

	// Connect to the WebDriver instance running locally.
	caps := selenium.Capabilities{"browserName": "firefox"}
	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		panic(err)
	}
	defer wd.Quit()

	// Navigate to the simple playground interface.
	if err := wd.Get("http://play.golang.org/?simple=1"); err != nil {
		panic(err)
	}

	ext := seleniumext.New(wd)

	// Replace the boilerplate program in the code editor. The helper scrolls
	// to the editor, clears it, and types the new program.
	err = ext.SetFieldValue(seleniumext.ByCSS("#code"), seleniumext.Text, `
		package main
		import "fmt"

		func main() {
			fmt.Println("Hello WebDriver!")
		}
	`)
	if err != nil {
		panic(err)
	}

	// Click the run button and wait for the output pane to show up.
	ok, err := ext.ClickAndConfirmDisplayed(
		seleniumext.ByCSS("#run"), seleniumext.SingleClick,
		seleniumext.ByCSS("#output"), true)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("output pane never appeared")
	}

	// Read the output once every line has content.
	lines, err := ext.TextsNonBlank(seleniumext.ByCSS("#output pre"))
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.Join(lines, "\n"))
	// Example Output:
	// Hello WebDriver!
	//
	// Program exited.
}
