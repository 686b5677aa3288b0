package seleniumext_test

import (
	"flag"
	"fmt"
	"net"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"

	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/tebeka/selenium"

	"github.com/JBelisle/selenium-automation-extensions/internal/extensiontest"
)

var (
	selenium3Path          = flag.String("selenium3_path", "", "The path to the Selenium 3 server JAR. If empty or the file is not present, Firefox tests using Selenium 3 will not be run.")
	firefoxBinarySelenium3 = flag.String("firefox_binary_for_selenium3", "vendor/firefox/firefox", "The name of the Firefox binary for Selenium 3 tests or the path to it. If the name does not contain directory separators, the PATH will be searched.")
	geckoDriverPath        = flag.String("geckodriver_path", "", "The path to the geckodriver binary. If empty or the file is not present, the Geckodriver tests will not be run.")
	javaPath               = flag.String("java_path", "", "The path to the Java runtime binary to invoke. If not specified, 'java' will be used.")

	chromeDriverPath = flag.String("chrome_driver_path", "", "The path to the ChromeDriver binary. If empty or the file is not present, Chrome tests will not be run.")
	chromeBinary     = flag.String("chrome_binary", "vendor/chrome-linux/chrome", "The name of the Chrome binary or the path to it. If name is not an exact path, the PATH will be searched.")

	htmlUnitDriverPath = flag.String("htmlunit_driver_path", "vendor/htmlunit-driver.jar", "The path to the HTMLUnit Driver JAR.")

	startFrameBuffer = flag.Bool("start_frame_buffer", true, "If true, start an Xvfb subprocess and run the browsers in that X server.")
	headless         = flag.Bool("headless", false, "If true, run the browsers in headless mode.")

	serverURL string
)

func TestMain(m *testing.M) {
	flag.Parse()
	setDriverPaths()

	s := httptest.NewServer(extensiontest.Handler)
	serverURL = s.URL
	defer s.Close()
	os.Exit(m.Run())
}

func findBestPath(glob string, binary bool) string {
	matches, err := filepath.Glob(glob)
	if err != nil {
		glog.Warningf("Error globbing %q: %s", glob, err)
		return ""
	}
	if len(matches) == 0 {
		return ""
	}
	// Iterate backwards: newer versions should be sorted to the end.
	sort.Strings(matches)
	for i := len(matches) - 1; i >= 0; i-- {
		path := matches[i]
		fi, err := os.Stat(path)
		if err != nil {
			glog.Warningf("Error statting %q: %s", path, err)
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		if binary && fi.Mode().Perm()&0111 == 0 {
			continue
		}
		return path
	}
	return ""
}

func setDriverPaths() {
	if *selenium3Path == "" {
		*selenium3Path = findBestPath("vendor/selenium-server*" /*binary=*/, false)
	}
	if *geckoDriverPath == "" {
		*geckoDriverPath = findBestPath("vendor/geckodriver*" /*binary=*/, true)
	}
	if *chromeDriverPath == "" {
		*chromeDriverPath = findBestPath("vendor/chromedriver*" /*binary=*/, true)
	}
}

func pickUnusedPort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		return 0, err
	}
	return port, nil
}

func TestChrome(t *testing.T) {
	if _, err := os.Stat(*chromeBinary); err != nil {
		path, err := exec.LookPath(*chromeBinary)
		if err != nil {
			t.Skipf("Skipping Chrome tests because binary %q not found", *chromeBinary)
		}
		*chromeBinary = path
	}
	if _, err := os.Stat(*chromeDriverPath); err != nil {
		t.Skipf("Skipping Chrome tests because ChromeDriver not found at path %q", *chromeDriverPath)
	}

	var opts []selenium.ServiceOption
	if *startFrameBuffer {
		opts = append(opts, selenium.StartFrameBuffer())
	}
	if testing.Verbose() {
		selenium.SetDebug(true)
		opts = append(opts, selenium.Output(os.Stderr))
	}

	port, err := pickUnusedPort()
	if err != nil {
		t.Fatalf("pickUnusedPort() returned error: %v", err)
	}
	s, err := selenium.NewChromeDriverService(*chromeDriverPath, port, opts...)
	if err != nil {
		t.Fatalf("Error starting the ChromeDriver server: %v", err)
	}

	c := extensiontest.Config{
		Addr:           fmt.Sprintf("http://127.0.0.1:%d/wd/hub", port),
		Browser:        "chrome",
		Path:           *chromeBinary,
		ServerURL:      serverURL,
		ServiceOptions: opts,
		Headless:       *headless,
	}
	extensiontest.RunCommonTests(t, c)

	if err := s.Stop(); err != nil {
		t.Fatalf("Error stopping the ChromeDriver service: %v", err)
	}
}

func TestFirefoxSelenium3(t *testing.T) {
	if _, err := os.Stat(*selenium3Path); err != nil {
		t.Skipf("Skipping Firefox tests using Selenium 3 because Selenium WebDriver JAR not found at path %q", *selenium3Path)
	}
	if _, err := os.Stat(*geckoDriverPath); err != nil {
		t.Skipf("Skipping Firefox tests on Selenium 3 because geckodriver binary %q not found", *geckoDriverPath)
	}

	runFirefoxTests(t, *selenium3Path, extensiontest.Config{
		SeleniumVersion: semver.MustParse("3.0.0"),
		ServiceOptions:  []selenium.ServiceOption{selenium.GeckoDriver(*geckoDriverPath)},
		Path:            *firefoxBinarySelenium3,
	})
}

func TestFirefoxGeckoDriver(t *testing.T) {
	if _, err := os.Stat(*geckoDriverPath); err != nil {
		t.Skipf("Skipping Firefox tests because geckodriver binary %q not found", *geckoDriverPath)
	}

	runFirefoxTests(t, *geckoDriverPath, extensiontest.Config{
		Path: *firefoxBinarySelenium3,
	})
}

func runFirefoxTests(t *testing.T, webDriverPath string, c extensiontest.Config) {
	c.Browser = "firefox"
	c.ServerURL = serverURL
	c.Headless = *headless

	if s, err := os.Stat(c.Path); err != nil || !s.Mode().IsRegular() {
		if path, err := exec.LookPath(c.Path); err == nil {
			c.Path = path
		} else {
			t.Skipf("Skipping Firefox tests because binary %q not found", c.Path)
		}
	}

	if *startFrameBuffer {
		c.ServiceOptions = append(c.ServiceOptions, selenium.StartFrameBuffer())
	}
	if testing.Verbose() {
		selenium.SetDebug(true)
		c.ServiceOptions = append(c.ServiceOptions, selenium.Output(os.Stderr))
	}
	if *javaPath != "" {
		c.ServiceOptions = append(c.ServiceOptions, selenium.JavaPath(*javaPath))
	}

	port, err := pickUnusedPort()
	if err != nil {
		t.Fatalf("pickUnusedPort() returned error: %v", err)
	}

	var s *selenium.Service
	if c.SeleniumVersion.Major == 0 {
		s, err = selenium.NewGeckoDriverService(webDriverPath, port, c.ServiceOptions...)
	} else {
		s, err = selenium.NewSeleniumService(webDriverPath, port, c.ServiceOptions...)
	}
	if err != nil {
		t.Fatalf("Error starting the WebDriver server with binary %q: %v", webDriverPath, err)
	}

	if c.SeleniumVersion.Major == 0 {
		c.Addr = fmt.Sprintf("http://127.0.0.1:%d", port)
	} else {
		c.Addr = fmt.Sprintf("http://127.0.0.1:%d/wd/hub", port)
	}

	extensiontest.RunCommonTests(t, c)

	if err := s.Stop(); err != nil {
		t.Fatalf("Error stopping the Selenium service: %v", err)
	}
}

func TestHTMLUnit(t *testing.T) {
	if _, err := os.Stat(*selenium3Path); err != nil {
		t.Skipf("Skipping HTMLUnit tests because the Selenium WebDriver JAR was not found at path %q", *selenium3Path)
	}
	if _, err := os.Stat(*htmlUnitDriverPath); err != nil {
		t.Skipf("Skipping HTMLUnit tests because the HTMLUnit Driver JAR not found at path %q", *htmlUnitDriverPath)
	}

	if testing.Verbose() {
		selenium.SetDebug(true)
	}

	c := extensiontest.Config{
		Browser:         "htmlunit",
		ServerURL:       serverURL,
		SeleniumVersion: semver.MustParse("3.0.0"),
		ServiceOptions:  []selenium.ServiceOption{selenium.HTMLUnit(*htmlUnitDriverPath)},
	}

	port, err := pickUnusedPort()
	if err != nil {
		t.Fatalf("pickUnusedPort() returned error: %v", err)
	}
	s, err := selenium.NewSeleniumService(*selenium3Path, port, c.ServiceOptions...)
	if err != nil {
		t.Fatalf("Error starting the WebDriver server with binary %q: %v", *selenium3Path, err)
	}
	c.Addr = fmt.Sprintf("http://127.0.0.1:%d/wd/hub", port)

	extensiontest.RunCommonTests(t, c)

	if err := s.Stop(); err != nil {
		t.Fatalf("Error stopping the Selenium service: %v", err)
	}
}
