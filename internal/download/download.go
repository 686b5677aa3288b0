// Package download fetches the browsers, WebDriver binaries and server JARs
// the integration tests run against. Files land in a single directory,
// conventionally vendor/, where the test flags look for them by default.
package download

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/golang/glog"
	"github.com/google/go-github/v27/github"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// File describes how to obtain one binary dependency from the Web.
type File struct {
	url      string
	Name     string
	hash     string
	hashType string // default is sha256
	Rename   []string
	Browser  bool
	// The directory in which to store the file.
	directory string
}

func (f File) Path() string {
	if f.directory != "" {
		return filepath.Join(f.directory, f.Name)
	}
	return f.Name
}

var (
	// SeleniumFile is the Selenium 3 standalone server JAR.
	SeleniumFile = File{
		url:  "https://selenium-release.storage.googleapis.com/3.141/selenium-server-standalone-3.141.59.jar",
		Name: "selenium-server.jar",
		hash: "acf71b77d1b66b55db6fb0bed6d8bae2bbd481311bcbedfeff472c0d15e8f3cb",
	}

	// GeckodriverFile is a pinned Geckodriver release.
	GeckodriverFile = File{
		url:  "https://github.com/mozilla/geckodriver/releases/download/v0.33.0/geckodriver-v0.33.0-linux64.tar.gz",
		Name: "geckodriver.tar.gz",
	}

	// FirefoxFile is a pinned Firefox release. The archive unpacks into
	// firefox/, which is where the test flags expect the binary.
	FirefoxFile = File{
		url:     "https://download-installer.cdn.mozilla.net/pub/firefox/releases/115.0/linux-x86_64/en-US/firefox-115.0.tar.bz2",
		Name:    "firefox.tar.bz2",
		Browser: true,
	}

	// FirefoxNightlyFile is the current Firefox nightly.
	FirefoxNightlyFile = File{
		url:     "https://download.mozilla.org/?product=firefox-nightly-latest-ssl&os=linux64&lang=en-US",
		Name:    "firefox-nightly.tar.bz2",
		Browser: true,
	}
)

// AllFiles assembles every binary dependency of the integration tests. With
// latest set, the moving targets are resolved to their current versions
// instead of the pinned releases. Chromium and its matching ChromeDriver
// always come from the latest snapshot, and the HTMLUnit driver from its
// latest GitHub release, since neither publishes stable pinnable archives.
func AllFiles(ctx context.Context, latest bool) ([]File, error) {
	files := []File{SeleniumFile}

	htmlUnit, err := LatestGithubRelease(ctx, "SeleniumHQ", "htmlunit-driver",
		`htmlunit-driver-.*-jar-with-dependencies\.jar`, "htmlunit-driver.jar")
	if err != nil {
		return nil, err
	}
	files = append(files, htmlUnit)

	chrome, err := ChromeSnapshotFiles(ctx)
	if err != nil {
		return nil, err
	}
	files = append(files, chrome...)

	if !latest {
		return append(files, GeckodriverFile, FirefoxFile), nil
	}
	gecko, err := LatestGithubRelease(ctx, "mozilla", "geckodriver",
		`geckodriver-.*linux64\.tar\.gz`, "geckodriver.tar.gz")
	if err != nil {
		return nil, err
	}
	return append(files, gecko, FirefoxNightlyFile), nil
}

// ChromeSnapshotFiles resolves the latest Chromium build and its matching
// ChromeDriver from the chromium-browser-snapshots bucket.
func ChromeSnapshotFiles(ctx context.Context) ([]File, error) {
	const (
		// Bucket URL: https://console.cloud.google.com/storage/browser/chromium-browser-snapshots/?pli=1
		storageBktName       = "chromium-browser-snapshots"
		prefixLinux64        = "Linux_x64"
		lastChangeFile       = "Linux_x64/LAST_CHANGE"
		chromeFilename       = "chrome-linux.zip"
		chromeDriverFilename = "chromedriver_linux64.zip"
	)

	gcsPath := fmt.Sprintf("gs://%s/", storageBktName)
	client, err := storage.NewClient(ctx, option.WithHTTPClient(http.DefaultClient))
	if err != nil {
		return nil, fmt.Errorf("cannot create a storage client for downloading the chrome browser: %v", err)
	}
	bkt := client.Bucket(storageBktName)

	r, err := bkt.Object(lastChangeFile).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot create a reader for %s%s file: %v", gcsPath, lastChangeFile, err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read from %s%s file: %v", gcsPath, lastChangeFile, err)
	}
	build := strings.TrimSpace(string(data))

	parts := []struct {
		object, name string
		browser      bool
		rename       []string
	}{
		{path.Join(prefixLinux64, build, chromeFilename), chromeFilename, true, nil},
		{path.Join(prefixLinux64, build, chromeDriverFilename), "chromedriver.zip", false,
			[]string{"chromedriver_linux64/chromedriver", "chromedriver"}},
	}
	var files []File
	for _, p := range parts {
		attrs, err := bkt.Object(p.object).Attrs(ctx)
		if err != nil {
			return nil, fmt.Errorf("cannot get the %s%s attrs: %v", gcsPath, p.object, err)
		}
		files = append(files, File{
			Name:     p.name,
			Browser:  p.browser,
			Rename:   p.rename,
			url:      attrs.MediaLink,
			hash:     hex.EncodeToString(attrs.MD5),
			hashType: "md5",
		})
	}
	return files, nil
}

// LatestGithubRelease resolves the asset matching assetName (a regular
// expression) in the latest release of the given repository.
func LatestGithubRelease(ctx context.Context, owner, repo, assetName, localName string) (File, error) {
	client := github.NewClient(nil)
	rel, _, err := client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return File{}, err
	}
	assetNameRE, err := regexp.Compile(assetName)
	if err != nil {
		return File{}, fmt.Errorf("invalid asset name regular expression %q: %s", assetName, err)
	}
	for _, a := range rel.Assets {
		if !assetNameRE.MatchString(a.GetName()) {
			continue
		}
		u := a.GetBrowserDownloadURL()
		if u == "" {
			return File{}, fmt.Errorf("%s does not have a download URL", a.GetName())
		}
		return File{Name: localName, url: u}, nil
	}
	return File{}, fmt.Errorf("release for %s not found at https://github.com/%s/%s/releases", assetName, owner, repo)
}

// Download fetches file into directory unless a copy with the expected hash
// is already there. Archives are unpacked in place. If directory is the
// empty string, the file lands in the current directory.
func Download(file File, directory string) error {
	file.directory = directory

	if file.hash != "" && fileSameHash(file) {
		glog.Infof("Skipping file %q which has already been downloaded.", file.Name)
	} else {
		glog.Infof("Downloading %q from %q", file.Name, file.url)
		if err := downloadFile(file); err != nil {
			return err
		}
	}

	if err := unzipArchive(file); err != nil {
		return err
	}

	if rename := file.Rename; len(rename) == 2 {
		from := filepath.Join(file.directory, rename[0])
		to := filepath.Join(file.directory, rename[1])
		glog.Infof("Renaming %q to %q", from, to)
		os.RemoveAll(to) // Ignore error.
		if err := os.Rename(from, to); err != nil {
			glog.Warningf("Error renaming %q to %q: %v", from, to, err)
		}
	}
	return nil
}

// DownloadAll fetches every dependency concurrently. Browser archives are
// skipped when browsers is false.
func DownloadAll(ctx context.Context, directory string, latest, browsers bool) error {
	files, err := AllFiles(ctx, latest)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, file := range files {
		file := file
		if file.Browser && !browsers {
			glog.Infof("Skipping browser archive %q.", file.Name)
			continue
		}
		g.Go(func() error {
			if err := Download(file, directory); err != nil {
				return fmt.Errorf("error handling %s: %s", file.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func downloadFile(file File) (err error) {
	f, err := os.Create(file.Path())
	if err != nil {
		return fmt.Errorf("error creating %q: %v", file.Path(), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %q: %v", file.Path(), closeErr)
		}
	}()

	resp, err := http.Get(file.url)
	if err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
	}
	defer resp.Body.Close()
	if file.hash != "" {
		var h hash.Hash
		switch strings.ToLower(file.hashType) {
		case "md5":
			h = md5.New()
		case "sha1":
			h = sha1.New()
		default:
			h = sha256.New()
		}
		if _, err := io.Copy(io.MultiWriter(f, h), resp.Body); err != nil {
			return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
		}
		if h := hex.EncodeToString(h.Sum(nil)); h != file.hash {
			return fmt.Errorf("%s: got %s hash %q, want %q", file.Name, file.hashType, h, file.hash)
		}
	} else {
		if _, err := io.Copy(f, resp.Body); err != nil {
			return fmt.Errorf("%s: error downloading %q: %v", file.Name, file.url, err)
		}
	}
	return nil
}

func fileSameHash(file File) bool {
	if _, err := os.Stat(file.Path()); err != nil {
		return false
	}
	var h hash.Hash
	switch strings.ToLower(file.hashType) {
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	default:
		h = sha256.New()
	}
	f, err := os.Open(file.Path())
	if err != nil {
		return false
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return false
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if sum != file.hash {
		glog.Warningf("File %q: got hash %q, expect hash %q", file.Name, sum, file.hash)
		return false
	}
	return true
}

func unzipArchive(file File) error {
	dir := "."
	if file.directory != "" {
		dir = file.directory
	}

	var unzipCmd []string
	switch path.Ext(file.Name) {
	case ".zip":
		unzipCmd = []string{"unzip", "-d", dir, "-o", file.Path()}
	case ".gz":
		unzipCmd = []string{"tar", "-xzf", file.Path(), "-C", dir}
	case ".bz2":
		unzipCmd = []string{"tar", "-xjf", file.Path(), "-C", dir}
	default:
		return nil
	}

	glog.Infof("Unzipping %q", file.Path())
	if err := exec.Command(unzipCmd[0], unzipCmd[1:]...).Run(); err != nil {
		return fmt.Errorf("error unzipping %q: %v", file.Name, err)
	}
	return nil
}
