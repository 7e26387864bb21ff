// Package session holds the client's transient state: tab selection, the
// selected local file, upload progress, banners, and the busy gate that
// keeps at most one exchange in flight. The state is a plain serializable
// struct mutated only through the transition methods in this package, one
// per operation outcome, so transitions are testable without any rendering
// or network layer.
package session

import (
	"fmt"

	"filedrop/internal/client/api"
	"filedrop/internal/common"
)

// Tab identifies the active side of the UI.
type Tab string

const (
	TabUpload   Tab = "upload"
	TabDownload Tab = "download"
)

// BannerKind classifies the single status message shown for the most recent
// operation.
type BannerKind string

const (
	BannerNone    BannerKind = ""
	BannerError   BannerKind = "error"
	BannerSuccess BannerKind = "success"
)

type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message,omitempty"`
}

// State is the whole client session. Nothing here survives the process.
type State struct {
	ActiveTab  Tab               `json:"active_tab"`
	FilePath   string            `json:"file_path,omitempty"`
	FileSize   int64             `json:"file_size,omitempty"`
	Progress   int               `json:"progress"`
	LastUpload *api.UploadResult `json:"last_upload,omitempty"`
	Code       string            `json:"code,omitempty"`
	Info       *api.FileInfo     `json:"info,omitempty"`
	Banner     Banner            `json:"banner"`
	Busy       bool              `json:"busy"`
}

func New() *State {
	return &State{ActiveTab: TabUpload}
}

// SwitchTab changes the active tab. Pending results are kept: switching
// back and forth must not lose an upload code or a looked-up FileInfo.
func (s *State) SwitchTab(tab Tab) {
	s.ActiveTab = tab
}

// SelectFile records a local file choice after validating the size ceiling.
// On rejection only the banner changes; on success any prior banner is
// cleared.
func (s *State) SelectFile(path string, size int64) error {
	if size > common.MaxFileSize {
		s.Banner = Banner{Kind: BannerError, Message: fmt.Sprintf(
			"file exceeds the %d MB limit", common.MaxFileSize/(1024*1024))}
		return common.ErrFileTooLarge
	}
	s.FilePath = path
	s.FileSize = size
	s.Banner = Banner{}
	return nil
}

// Begin is the busy gate. It returns false while another exchange is in
// flight, in which case the caller must not dispatch. On success it marks
// the session busy and clears the previous banner.
func (s *State) Begin() bool {
	if s.Busy {
		return false
	}
	s.Busy = true
	s.Banner = Banner{}
	return true
}

// SetProgress records upload progress as floor(sent/total*100), clamped to
// [0, 100]. Events are applied as they arrive; strict monotonicity is not
// assumed from the transport.
func (s *State) SetProgress(sent, total int64) {
	if total <= 0 {
		return
	}
	p := int(sent * 100 / total)
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	s.Progress = p
}

// UploadSucceeded replaces the last upload result, clears the selected file
// and progress, and shows a success banner.
func (s *State) UploadSucceeded(res *api.UploadResult) {
	s.Busy = false
	s.LastUpload = res
	s.FilePath = ""
	s.FileSize = 0
	s.Progress = 0
	s.Banner = Banner{Kind: BannerSuccess, Message: fmt.Sprintf("file uploaded, code %s", res.Code)}
}

// UploadFailed surfaces msg as the error banner and resets progress.
func (s *State) UploadFailed(msg string) {
	s.Busy = false
	s.Progress = 0
	s.Banner = Banner{Kind: BannerError, Message: msg}
}

// SetCode normalizes raw and stores it. A changed code invalidates any
// previously fetched FileInfo.
func (s *State) SetCode(raw string) {
	code := NormalizeCode(raw)
	if code != s.Code {
		s.Code = code
		s.Info = nil
	}
}

// InfoSucceeded stores the lookup result as received, including a zero or
// negative time remaining; rendering that as "Expired" is a view concern.
func (s *State) InfoSucceeded(info *api.FileInfo) {
	s.Busy = false
	s.Info = info
}

// InfoFailed clears FileInfo and surfaces msg as the error banner.
func (s *State) InfoFailed(msg string) {
	s.Busy = false
	s.Info = nil
	s.Banner = Banner{Kind: BannerError, Message: msg}
}

// DownloadSucceeded clears the code and FileInfo: codes are single-use, the
// server deletes the backing object after a successful retrieval.
func (s *State) DownloadSucceeded(savedAs string) {
	s.Busy = false
	s.Code = ""
	s.Info = nil
	s.Banner = Banner{Kind: BannerSuccess, Message: fmt.Sprintf("saved as %s", savedAs)}
}

// DownloadFailed leaves the code and FileInfo untouched so the user can
// retry, and surfaces msg as the error banner.
func (s *State) DownloadFailed(msg string) {
	s.Busy = false
	s.Banner = Banner{Kind: BannerError, Message: msg}
}

// DownloadName applies the last filename-resolution step: when the header
// yielded only the generic fallback and a prior lookup knows the original
// name, prefer the original name.
func (s *State) DownloadName(resolved string) string {
	if resolved == api.DefaultFilename && s.Info != nil && s.Info.OriginalName != "" {
		return s.Info.OriginalName
	}
	return resolved
}
