/*
Package seleniumext layers retrying, stale-tolerant convenience operations on
top of a Selenium WebDriver session.

Dynamic pages mutate the DOM while automation code interacts with it: nodes
show up late, get replaced, or go stale between lookup and use. The helpers
here absorb that churn with fixed-delay, fixed-count retry policies instead
of sleeps sprinkled through calling code.

Example usage:

	// Errors are ignored for brevity.
	wd, _ := selenium.NewRemote(caps, "http://localhost:4444/wd/hub")
	defer wd.Quit()

	ext := seleniumext.New(wd)

	// Fill the login form.
	ext.SetFieldValue(seleniumext.ByName("user"), seleniumext.Text, "gopher")
	ext.SetFieldValue(seleniumext.ByName("pass"), seleniumext.Password, "hunter2")

	// Click submit and wait for the dashboard to show up.
	ok, err := ext.ClickAndConfirmDisplayed(
		seleniumext.ByID("submit"), seleniumext.SingleClick,
		seleniumext.ByID("dashboard"), true)
	if err != nil {
		// The click could not be dispatched, or the page broke.
	}
	if !ok {
		// The retry budget ran out before the dashboard appeared.
	}
*/
package seleniumext
