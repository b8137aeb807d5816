package version

import (
	// go:embedディレクティブ用
	_ "embed"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Berison/gocounter/errs"
)

// VERSION は現在のgocounterのバージョンを表す
const VERSION = "v0.1.0"

const defaultReleasesURL = "https://api.github.com/repos/Berison/gocounter/releases/latest"

// PrintVersion は現在のgocounterのバージョンを表示する
func PrintVersion(w io.Writer) {
	fmt.Fprintln(w, "gocounter "+VERSION)
}

type releasesInfoResponse struct {
	LatestVersion string `json:"tag_name"`
}

// Checker は最新リリースの問い合わせ先を保持する
type Checker struct {
	client      *http.Client
	releasesURL string
}

// NewChecker はGitHubのリリースAPIに問い合わせるCheckerを生成する
func NewChecker() *Checker {
	return &Checker{
		client:      &http.Client{Timeout: 3 * time.Second},
		releasesURL: defaultReleasesURL,
	}
}

// IsLatestVersion は現在のgocounterのバージョンが最新かどうかを判定する
func (c *Checker) IsLatestVersion(ctx context.Context) (bool, string, error) {
	latestVersion, err := c.fetchLatestVersion(ctx)
	if err != nil {
		return false, "", err
	}
	return latestVersion == VERSION, latestVersion, nil
}

func (c *Checker) fetchLatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return "", errs.NewInternalError("failed to build release request").Wrap(err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", errs.NewInternalError("failed to fetch latest release").Wrap(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			errs.HandleError(err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errs.NewInternalError("unexpected status from release API: " + resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewInternalError("failed to read response body").Wrap(err)
	}
	var releasesInfo releasesInfoResponse
	if err := json.Unmarshal(body, &releasesInfo); err != nil {
		return "", errs.NewInternalError("failed to unmarshal response body").Wrap(err)
	}
	if releasesInfo.LatestVersion == "" {
		return "", errs.NewInternalError("release API returned no tag")
	}

	return releasesInfo.LatestVersion, nil
}

//go:embed latest_ver_note_ascii.txt
var latestVerNoteASCII string

// PrintNoteLatestVersion は最新バージョンが存在する場合の通知を表示する
func PrintNoteLatestVersion(w io.Writer, latestVersion string) {
	fmt.Fprintf(w, latestVerNoteASCII, latestVersion, VERSION)
}
