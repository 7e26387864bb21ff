package common

// MaxFileSize is the upload ceiling enforced client-side before any network
// call. The server enforces the same bound with a 413.
const MaxFileSize = 50 * 1024 * 1024

// CodeMaxLen is the maximum accepted length of a download code. The server
// issues 8-character codes.
const CodeMaxLen = 8

// UploadFieldName is the multipart form field carrying the file content.
const UploadFieldName = "file"
