package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"filedrop/internal/client/api"
	"filedrop/internal/common"
)

func TestSelectFile_WithinLimit(t *testing.T) {
	s := New()
	s.Banner = Banner{Kind: BannerError, Message: "old error"}

	require.NoError(t, s.SelectFile("/tmp/a.txt", common.MaxFileSize))
	require.Equal(t, "/tmp/a.txt", s.FilePath)
	require.Equal(t, int64(common.MaxFileSize), s.FileSize)
	require.Equal(t, BannerNone, s.Banner.Kind, "prior banner is cleared")
}

func TestSelectFile_TooLarge(t *testing.T) {
	s := New()
	s.FilePath = "/tmp/previous.txt"
	s.FileSize = 10

	err := s.SelectFile("/tmp/huge.bin", common.MaxFileSize+1)
	require.ErrorIs(t, err, common.ErrFileTooLarge)

	// Only the banner changed.
	require.Equal(t, BannerError, s.Banner.Kind)
	require.Equal(t, "/tmp/previous.txt", s.FilePath)
	require.Equal(t, int64(10), s.FileSize)
	require.False(t, s.Busy)
}

func TestBegin_GatesConcurrentSubmissions(t *testing.T) {
	s := New()
	s.Banner = Banner{Kind: BannerSuccess, Message: "done"}

	require.True(t, s.Begin())
	require.True(t, s.Busy)
	require.Equal(t, BannerNone, s.Banner.Kind, "a new request clears the previous banner")

	require.False(t, s.Begin(), "second submission while busy is refused")
}

func TestSetProgress_Bounds(t *testing.T) {
	s := New()

	s.SetProgress(0, 100)
	require.Equal(t, 0, s.Progress)

	s.SetProgress(33, 100)
	require.Equal(t, 33, s.Progress)

	s.SetProgress(199, 100)
	require.Equal(t, 100, s.Progress, "clamped to 100")

	s.SetProgress(50, 0)
	require.Equal(t, 100, s.Progress, "zero total is ignored")

	s.SetProgress(1, 3)
	require.Equal(t, 0, s.Progress, "floor, not round")
}

func TestUploadSucceeded_ResetsSelection(t *testing.T) {
	s := New()
	s.Begin()
	s.FilePath = "/tmp/a.txt"
	s.FileSize = 11
	s.Progress = 100

	s.UploadSucceeded(&api.UploadResult{Code: "AB12CD34", FileSize: 11})

	require.False(t, s.Busy)
	require.Empty(t, s.FilePath)
	require.Zero(t, s.FileSize)
	require.Zero(t, s.Progress)
	require.Equal(t, BannerSuccess, s.Banner.Kind)
	require.Equal(t, "AB12CD34", s.LastUpload.Code)
}

func TestUploadFailed_SurfacesDetailVerbatim(t *testing.T) {
	s := New()
	s.Begin()
	s.SetProgress(80, 100)

	s.UploadFailed("file too large")

	require.False(t, s.Busy)
	require.Zero(t, s.Progress)
	require.Equal(t, BannerError, s.Banner.Kind)
	require.Equal(t, "file too large", s.Banner.Message)
}

func TestSetCode_ChangeInvalidatesInfo(t *testing.T) {
	s := New()
	s.SetCode("AB12CD34")
	s.Info = &api.FileInfo{OriginalName: "notes.txt"}

	// Same code after normalization: info survives.
	s.SetCode("ab12cd34")
	require.NotNil(t, s.Info)

	// Different code: info is cleared.
	s.SetCode("ZZ99")
	require.Nil(t, s.Info)
	require.Equal(t, "ZZ99", s.Code)
}

func TestInfoSucceeded_KeepsNegativeTimeRemaining(t *testing.T) {
	s := New()
	s.Begin()
	s.InfoSucceeded(&api.FileInfo{OriginalName: "old.txt", TimeRemaining: -5})

	require.False(t, s.Busy)
	require.Equal(t, float64(-5), s.Info.TimeRemaining)
	require.Equal(t, BannerNone, s.Banner.Kind)
}

func TestInfoFailed_ClearsInfo(t *testing.T) {
	s := New()
	s.Info = &api.FileInfo{OriginalName: "notes.txt"}
	s.Begin()

	s.InfoFailed("Invalid or expired code")

	require.False(t, s.Busy)
	require.Nil(t, s.Info)
	require.Equal(t, "Invalid or expired code", s.Banner.Message)
}

func TestDownloadSucceeded_ClearsCodeAndInfo(t *testing.T) {
	s := New()
	s.SetCode("AB12CD34")
	s.Info = &api.FileInfo{OriginalName: "notes.txt"}
	s.Begin()

	s.DownloadSucceeded("notes.txt")

	require.False(t, s.Busy)
	require.Empty(t, s.Code)
	require.Nil(t, s.Info)
	require.Equal(t, BannerSuccess, s.Banner.Kind)
}

func TestDownloadFailed_LeavesCodeAndInfoForRetry(t *testing.T) {
	s := New()
	s.SetCode("AB12CD34")
	s.Info = &api.FileInfo{OriginalName: "notes.txt"}
	s.Begin()

	s.DownloadFailed("Code expired")

	require.False(t, s.Busy)
	require.Equal(t, "AB12CD34", s.Code)
	require.NotNil(t, s.Info)
	require.Equal(t, BannerError, s.Banner.Kind)
}

func TestDownloadName_PrefersOriginalNameOverFallback(t *testing.T) {
	s := New()
	require.Equal(t, "download", s.DownloadName(api.DefaultFilename))

	s.Info = &api.FileInfo{OriginalName: "notes.txt"}
	require.Equal(t, "notes.txt", s.DownloadName(api.DefaultFilename))

	// A real resolved name always wins.
	require.Equal(t, "report.pdf", s.DownloadName("report.pdf"))
}

func TestState_Serializable(t *testing.T) {
	s := New()
	s.SetCode("AB12CD34")
	s.Banner = Banner{Kind: BannerSuccess, Message: "ok"}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored State
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, s.Code, restored.Code)
	require.Equal(t, s.Banner, restored.Banner)
}
