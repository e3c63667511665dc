package tracker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Client is the interface for the store of already uploaded build identifiers; each tracker is a plain text file with one id per line
//
//go:generate mockgen -package=tracker -destination ./mock.go -source=client.go
type Client interface {
	Load(ctx context.Context, name string) (ids []string, err error)
	Append(ctx context.Context, name, id string) (err error)
}

// NewClient returns a tracker.Client storing <dir>/<name>.txt files
func NewClient(dir string) Client {
	return &client{
		dir: dir,
	}
}

type client struct {
	dir   string
	mutex sync.Mutex
}

func (c *client) path(name string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%v.txt", name))
}

func (c *client) Load(ctx context.Context, name string) (ids []string, err error) {

	file, err := os.Open(c.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	defer file.Close()

	ids = []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if id := strings.TrimSpace(scanner.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading tracker %v: %w", c.path(name), err)
	}

	return ids, nil
}

func (c *client) Append(ctx context.Context, name, id string) (err error) {

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err = os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(c.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(file, id); err != nil {
		file.Close()
		return fmt.Errorf("failed writing tracker %v: %w", c.path(name), err)
	}

	return file.Close()
}
