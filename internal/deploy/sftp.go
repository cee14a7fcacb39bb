package deploy

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/rohitlokhande/portfolio/internal/config"
)

// DialTimeout bounds the SSH handshake.
const DialTimeout = 20 * time.Second

// Session is an open SFTP connection.
type Session struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

// MkdirAll creates dir and any missing parents on the remote host.
func (s *Session) MkdirAll(dir string) error {
	return s.sftp.MkdirAll(dir)
}

// Create truncates or creates the remote file.
func (s *Session) Create(name string) (io.WriteCloser, error) {
	return s.sftp.Create(name)
}

// Close closes the SFTP session and its SSH connection.
func (s *Session) Close() error {
	sftpErr := s.sftp.Close()
	sshErr := s.ssh.Close()
	if sftpErr != nil {
		return sftpErr
	}
	return sshErr
}

// clientConfig builds the SSH client settings for cfg.
func clientConfig(cfg *config.DeployConfig) (*ssh.ClientConfig, error) {
	var auth []ssh.AuthMethod
	if cfg.KeyPath != "" {
		key, err := os.ReadFile(cfg.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("sftp: read private key: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("sftp: parse private key: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if cfg.Password != "" {
		auth = append(auth, ssh.Password(cfg.Password))
	}
	if len(auth) == 0 {
		return nil, fmt.Errorf("sftp: missing env SFTP_PASSWORD / SFTP_KEY_PATH")
	}

	hostKey := ssh.InsecureIgnoreHostKey() //nolint:gosec // opt-in by leaving SFTP_KNOWN_HOSTS empty
	if cfg.KnownHostsPath != "" {
		cb, err := knownhosts.New(cfg.KnownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("sftp: load known hosts: %w", err)
		}
		hostKey = cb
	} else {
		log.Printf("Warning: SFTP_KNOWN_HOSTS not set, host key for %s will not be verified", cfg.Host)
	}

	return &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		HostKeyCallback: hostKey,
		Timeout:         DialTimeout,
	}, nil
}

// Dial opens an SFTP session. Cancelling ctx abandons the dial.
func Dial(ctx context.Context, cfg *config.DeployConfig) (*Session, error) {
	sshCfg, err := clientConfig(cfg)
	if err != nil {
		return nil, err
	}

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", cfg.Addr(), sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		// Close a connection that completes after we gave up
		go func() {
			if r := <-ch; r.client != nil {
				_ = r.client.Close()
			}
		}()
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, fmt.Errorf("sftp: new client: %w", err)
	}

	return &Session{ssh: sshClient, sftp: sftpClient}, nil
}

// Deploy uploads everything under localDir to cfg.RemoteDir.
func Deploy(ctx context.Context, cfg *config.DeployConfig, localDir string) (int, error) {
	uploads, err := Plan(localDir, cfg.RemoteDir)
	if err != nil {
		return 0, err
	}

	session, err := Dial(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer func() { _ = session.Close() }()

	return Run(ctx, session, uploads)
}
