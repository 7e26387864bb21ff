package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"filedrop/internal/client/api"
	"filedrop/internal/client/config"
	"filedrop/internal/client/qr"
	"filedrop/internal/client/session"
	"filedrop/internal/common"
	"filedrop/internal/logging"
)

type fakeClient struct {
	uploadRes      *api.UploadResult
	uploadErr      error
	uploadCalls    int
	progressScript [][2]int64

	infoRes   *api.FileInfo
	infoErr   error
	infoCalls int

	downloadRes   *api.DownloadResult
	downloadErr   error
	downloadCalls int

	healthErr error
}

func (f *fakeClient) Upload(ctx context.Context, name string, content io.Reader, onProgress api.ProgressFunc) (*api.UploadResult, error) {
	f.uploadCalls++
	io.Copy(io.Discard, content)
	for _, e := range f.progressScript {
		if onProgress != nil {
			onProgress(e[0], e[1])
		}
	}
	return f.uploadRes, f.uploadErr
}

func (f *fakeClient) Info(ctx context.Context, code string) (*api.FileInfo, error) {
	f.infoCalls++
	return f.infoRes, f.infoErr
}

func (f *fakeClient) Download(ctx context.Context, code string) (*api.DownloadResult, error) {
	f.downloadCalls++
	return f.downloadRes, f.downloadErr
}

func (f *fakeClient) Health(ctx context.Context) error { return f.healthErr }

func (f *fakeClient) DirectDownloadURL(code string) string {
	return "https://filedrop.test/download/" + code
}

type fakeScanner struct {
	text string
	err  error
}

func (f fakeScanner) Scan(string) (string, error) { return f.text, f.err }

func newTestApp(t *testing.T, client api.Client) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{BaseURL: "https://filedrop.test", RequestTimeout: time.Second, DownloadDir: t.TempDir()}
	app := &App{
		config:   cfg,
		client:   client,
		state:    session.New(),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
		log:      logging.NewDefault(io.Discard, slog.LevelError),
		renderer: qr.NopRenderer{},
		scanner:  fakeScanner{},
	}
	return app, &out
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUploadFlow_Success(t *testing.T) {
	client := &fakeClient{
		uploadRes:      &api.UploadResult{Code: "AB12CD34", FileSize: 11},
		progressScript: [][2]int64{{64, 128}, {128, 128}},
	}
	app, out := newTestApp(t, client)

	app.SelectFile(writeTempFile(t, "notes.txt", "hello world"))
	require.Equal(t, session.BannerNone, app.state.Banner.Kind)

	app.Upload(context.Background())

	require.Equal(t, 1, client.uploadCalls)
	require.False(t, app.state.Busy)
	require.Empty(t, app.state.FilePath, "selection cleared after success")
	require.Zero(t, app.state.Progress)
	require.Equal(t, session.BannerSuccess, app.state.Banner.Kind)
	require.Contains(t, out.String(), "AB12CD34")
}

func TestUploadFlow_ServerDetailError(t *testing.T) {
	client := &fakeClient{
		uploadErr:      &api.APIError{Op: "upload", Status: 413, Detail: "file too large"},
		progressScript: [][2]int64{{100, 100}},
	}
	app, out := newTestApp(t, client)

	app.SelectFile(writeTempFile(t, "a.txt", "x"))
	app.Upload(context.Background())

	require.Equal(t, session.BannerError, app.state.Banner.Kind)
	require.Equal(t, "file too large", app.state.Banner.Message, "detail surfaced verbatim")
	require.Zero(t, app.state.Progress, "progress reset on failure")
	require.False(t, app.state.Busy)
	require.Contains(t, out.String(), "error: file too large")
}

func TestUploadFlow_NoFileSelected(t *testing.T) {
	client := &fakeClient{}
	app, _ := newTestApp(t, client)

	app.Upload(context.Background())

	require.Zero(t, client.uploadCalls, "validation errors never reach the network")
	require.Equal(t, session.BannerError, app.state.Banner.Kind)
}

func TestUploadFlow_BusyGate(t *testing.T) {
	client := &fakeClient{uploadRes: &api.UploadResult{Code: "AB12CD34"}}
	app, out := newTestApp(t, client)

	app.SelectFile(writeTempFile(t, "a.txt", "x"))
	app.state.Begin() // simulate an in-flight exchange

	app.Upload(context.Background())

	require.Zero(t, client.uploadCalls, "no second request dispatched while busy")
	require.Contains(t, out.String(), common.ErrBusy.Error())
}

func TestSelectFile_TooLargeRejectedLocally(t *testing.T) {
	client := &fakeClient{}
	app, out := newTestApp(t, client)

	path := writeTempFile(t, "big.bin", "x")
	require.NoError(t, os.Truncate(path, common.MaxFileSize+1))

	app.SelectFile(path)

	require.Empty(t, app.state.FilePath)
	require.Equal(t, session.BannerError, app.state.Banner.Kind)
	require.Contains(t, out.String(), "error:")
}

func TestInfoFlow_Success(t *testing.T) {
	client := &fakeClient{infoRes: &api.FileInfo{
		OriginalName: "notes.txt", FileSize: 11, ContentType: "text/plain", TimeRemaining: 42,
	}}
	app, out := newTestApp(t, client)

	app.SetCode("ab12cd34")
	app.Info(context.Background())

	require.Equal(t, 1, client.infoCalls)
	require.NotNil(t, app.state.Info)
	require.Contains(t, out.String(), "notes.txt")
	require.Contains(t, out.String(), "42s left")
}

func TestInfoFlow_ExpiredRendering(t *testing.T) {
	client := &fakeClient{infoRes: &api.FileInfo{OriginalName: "old.txt", TimeRemaining: -5}}
	app, out := newTestApp(t, client)

	app.SetCode("AB12CD34")
	app.Info(context.Background())

	require.Equal(t, float64(-5), app.state.Info.TimeRemaining, "stored unmodified")
	require.Contains(t, out.String(), "Expired")
}

func TestInfoFlow_EmptyCode(t *testing.T) {
	client := &fakeClient{}
	app, _ := newTestApp(t, client)

	app.Info(context.Background())

	require.Zero(t, client.infoCalls)
	require.Equal(t, session.BannerError, app.state.Banner.Kind)
}

func TestDownloadFlow_Success(t *testing.T) {
	client := &fakeClient{downloadRes: &api.DownloadResult{
		Filename: "report final.pdf",
		Body:     io.NopCloser(strings.NewReader("%PDF payload")),
	}}
	app, _ := newTestApp(t, client)

	app.SetCode("AB12CD34")
	app.Download(context.Background(), "")

	require.Equal(t, session.BannerSuccess, app.state.Banner.Kind)
	require.Empty(t, app.state.Code, "code cleared: single-use")
	require.Nil(t, app.state.Info)

	saved := filepath.Join(app.config.DownloadDir, "report final.pdf")
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Equal(t, "%PDF payload", string(data))
}

func TestDownloadFlow_FallbackNamePrefersFileInfo(t *testing.T) {
	client := &fakeClient{downloadRes: &api.DownloadResult{
		Filename: api.DefaultFilename,
		Body:     io.NopCloser(strings.NewReader("data")),
	}}
	app, _ := newTestApp(t, client)

	app.SetCode("AB12CD34")
	app.state.InfoSucceeded(&api.FileInfo{OriginalName: "notes.txt"})

	app.Download(context.Background(), "")

	_, err := os.Stat(filepath.Join(app.config.DownloadDir, "notes.txt"))
	require.NoError(t, err)
}

func TestDownloadFlow_FailureKeepsCodeForRetry(t *testing.T) {
	client := &fakeClient{downloadErr: &api.APIError{Op: "download", Status: 410, Detail: "Code expired"}}
	app, out := newTestApp(t, client)

	app.SetCode("AB12CD34")
	app.state.InfoSucceeded(&api.FileInfo{OriginalName: "notes.txt"})

	app.Download(context.Background(), "")

	require.Equal(t, "AB12CD34", app.state.Code)
	require.NotNil(t, app.state.Info)
	require.Equal(t, session.BannerError, app.state.Banner.Kind)
	require.Contains(t, out.String(), "Code expired")
}

func TestDownloadFlow_NoPartFileLeftBehind(t *testing.T) {
	client := &fakeClient{downloadRes: &api.DownloadResult{
		Filename: "x.bin",
		Body:     io.NopCloser(strings.NewReader("abc")),
	}}
	app, _ := newTestApp(t, client)

	app.SetCode("AB12CD34")
	app.Download(context.Background(), "")

	entries, err := os.ReadDir(app.config.DownloadDir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasSuffix(e.Name(), ".part"))
	}
}

func TestShowQR_RequiresUpload(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	app.ShowQR()
	require.Contains(t, out.String(), "nothing uploaded yet")
}

func TestShowQR_PrintsDirectURL(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	app.state.UploadSucceeded(&api.UploadResult{Code: "AB12CD34"})

	app.ShowQR()

	require.Contains(t, out.String(), "https://filedrop.test/download/AB12CD34")
}

func TestScanImage_AdoptsCodeFromURL(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	app.scanner = fakeScanner{text: "https://filedrop.test/download/ZZ99YY88"}

	app.ScanImage("shot.png")

	require.Equal(t, "ZZ99YY88", app.state.Code)
	require.Contains(t, out.String(), "code set to ZZ99YY88")
}

func TestScanImage_Failure(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	app.scanner = fakeScanner{err: qr.ErrUnavailable}

	app.ScanImage("shot.png")

	require.Empty(t, app.state.Code)
	require.Contains(t, out.String(), "scan failed")
}

func TestPing(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	app.Ping(context.Background())
	require.Contains(t, out.String(), "server is healthy")
}

func TestStatus(t *testing.T) {
	app, _ := newTestApp(t, &fakeClient{})
	require.Equal(t, "upload", app.Status())

	app.state.SwitchTab(session.TabDownload)
	app.SetCode("AB12CD34")
	app.state.Begin()
	require.Equal(t, "download AB12CD34 busy", app.Status())
}

func TestShowState_IsJSON(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	app.SetCode("AB12CD34")
	app.ShowState()
	require.Contains(t, out.String(), `"code": "AB12CD34"`)
}
