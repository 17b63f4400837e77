package keyfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rbset"
)

// ErrNotRegular is returned for files which are not regular files, e.g.
// directories or devices.
var ErrNotRegular = errors.New("keyfile: not a regular file")

// subscriberCapacity is the buffer size of the line channel.
const subscriberCapacity = 64

// keyFile represents an OS file which will be loaded as a set of keys.
type keyFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for lines read
}

// line is published for every key line of the file.
type line struct {
	no   int // line number, starting at 1
	text string
}

// done is the last message published for a file.
type done struct {
	lines int   // number of lines read
	err   error // I/O error, if any
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*keyFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	kf := &keyFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast a message per line
	}
	return kf, nil
}

// Load reads the keys of file name. Every key is converted by parse and then
// handed to insert. Load returns the number of keys read.
//
// If parse fails, Load returns an error which wraps the parse error and
// contains the line number; keys before the failing line have already been
// inserted.
func Load[T any](name string, parse func(string) (T, error), insert func(T)) (int, error) {
	kf, err := openFile(name)
	if err != nil {
		return 0, err
	}
	defer kf.file.Close()
	lines, ok := kf.cast.Sub(context.Background(), subscriberCapacity)
	if !ok {
		return 0, fmt.Errorf("keyfile: cannot subscribe to reader of %s", name)
	}
	tracer().Debugf("keyfile: loading %s (%d bytes)", name, kf.info.Size())
	go kf.read()
	//
	count := 0
	var parseErr error
	for msg := range lines {
		switch m := msg.(type) {
		case line:
			if parseErr != nil {
				continue // drain the remaining lines
			}
			key, err := parse(m.text)
			if err != nil {
				parseErr = fmt.Errorf("%s:%d: %w", name, m.no, err)
				tracer().Errorf("keyfile: %v", parseErr)
				continue
			}
			insert(key)
			count++
		case done:
			if parseErr != nil {
				return count, parseErr
			}
			if m.err != nil {
				tracer().Errorf("keyfile: reading %s: %v", name, m.err)
				return count, m.err
			}
			tracer().Infof("keyfile: loaded %d keys from %d lines of %s", count, m.lines, name)
			return count, nil
		}
	}
	return count, fmt.Errorf("keyfile: reader of %s terminated unexpectedly", name)
}

// read is the reader goroutine. It publishes every key line and finally
// a done message.
func (kf *keyFile) read() {
	defer kf.cast.Close()
	scanner := bufio.NewScanner(kf.file)
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		kf.cast.Pub(line{no: no, text: text})
	}
	kf.cast.Pub(done{lines: no, err: scanner.Err()})
}

func identity(s string) (string, error) {
	return s, nil
}

// LoadSet creates a set of the keys of a file, ordered by less.
// Duplicate keys are stored once.
func LoadSet(name string, less func(a, b string) bool) (*rbset.Set[string], error) {
	set, err := rbset.NewFunc(less)
	if err != nil {
		return nil, err
	}
	_, err = Load(name, identity, func(key string) { set.Insert(key) })
	return set, err
}

// LoadMultiset creates a multiset of the keys of a file, ordered by less.
// Duplicate keys are stored in the order of appearance.
func LoadMultiset(name string, less func(a, b string) bool) (*rbset.Multiset[string], error) {
	mset, err := rbset.NewMultisetFunc(less)
	if err != nil {
		return nil, err
	}
	_, err = Load(name, identity, func(key string) { mset.Insert(key) })
	return mset, err
}
