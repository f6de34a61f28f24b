package services

import (
	"errors"
	"fmt"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jlaffaye/ftp"
	"github.com/rs/zerolog/log"

	"editorial-cms/config"
)

// UploadResult describes a stored blob. Folder and Filename are returned
// separately so callers can persist them and delete the blob later without
// parsing the URL.
type UploadResult struct {
	URL      string
	Folder   string
	Filename string
}

// BlobClient is the remote file-store surface the services depend on.
type BlobClient interface {
	Upload(localPath, originalFilename string) (*UploadResult, error)
	Delete(remotePath string) bool
	List() []string
}

// FTPService stores blobs on a remote FTP server. Every operation dials a
// fresh connection, logs in with the configured credentials and closes the
// session when done; transfers are passive-mode binary.
type FTPService struct {
	cfg *config.FTPConfig
}

func NewFTPService(cfg *config.FTPConfig) *FTPService {
	return &FTPService{cfg: cfg}
}

func (s *FTPService) connect() (*ftp.ServerConn, error) {
	conn, err := ftp.Dial(s.cfg.Addr, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return nil, err
	}
	if err := conn.Login(s.cfg.Username, s.cfg.Password); err != nil {
		conn.Quit()
		return nil, err
	}
	return conn, nil
}

func folderForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp4", ".mkv", ".avi":
		return "videos/"
	case ".jpg", ".jpeg", ".png", ".gif":
		return "images/"
	case ".pdf", ".doc", ".docx":
		return "documents/"
	default:
		return "others/"
	}
}

func uniqueFilename(originalFilename string) string {
	return uuid.NewString() + filepath.Ext(originalFilename)
}

// ensureDirectory issues MKD and treats "already exists" (550) as success.
func (s *FTPService) ensureDirectory(conn *ftp.ServerConn, folder string) error {
	err := conn.MakeDir(strings.TrimSuffix(folder, "/"))
	if err == nil {
		return nil
	}
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && protoErr.Code == ftp.StatusFileUnavailable {
		return nil
	}
	return err
}

// Upload streams the local file to the remote server. The destination
// folder follows from the original filename's extension and the remote
// name is a random token plus that extension.
func (s *FTPService) Upload(localPath, originalFilename string) (*UploadResult, error) {
	folder := folderForExtension(filepath.Ext(originalFilename))
	name := uniqueFilename(originalFilename)

	conn, err := s.connect()
	if err != nil {
		return nil, fmt.Errorf("connecting to ftp server: %w", err)
	}
	defer conn.Quit()

	if err := s.ensureDirectory(conn, folder); err != nil {
		return nil, fmt.Errorf("creating remote directory %q: %w", folder, err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("opening local file: %w", err)
	}
	defer f.Close()

	if err := conn.Stor(folder+name, f); err != nil {
		return nil, fmt.Errorf("storing %q: %w", folder+name, err)
	}

	return &UploadResult{
		URL:      s.cfg.BaseURL + folder + name,
		Folder:   folder,
		Filename: name,
	}, nil
}

// Delete removes a remote file by path relative to the server root. It
// reports failure through the return value only.
func (s *FTPService) Delete(remotePath string) bool {
	conn, err := s.connect()
	if err != nil {
		log.Warn().Err(err).Str("path", remotePath).Msg("ftp delete: connection failed")
		return false
	}
	defer conn.Quit()

	if err := conn.Delete(remotePath); err != nil {
		log.Warn().Err(err).Str("path", remotePath).Msg("ftp delete failed")
		return false
	}
	return true
}

// List returns the filenames in the server root, or an empty slice when
// the listing fails.
func (s *FTPService) List() []string {
	files := []string{}

	conn, err := s.connect()
	if err != nil {
		log.Warn().Err(err).Msg("ftp list: connection failed")
		return files
	}
	defer conn.Quit()

	entries, err := conn.NameList("")
	if err != nil {
		log.Warn().Err(err).Msg("ftp list failed")
		return files
	}
	return entries
}
