// Package editor provides the settings-editing session a front end builds
// on: typed read and write access to a layer's current values, change
// notification hooks, and the dependence predicate deciding whether a
// setting is currently enabled.
//
// A Session binds one immutable Layer to one mutable DataSet for the
// lifetime of an editing interaction. Rendering of any actual editing
// surface is the caller's concern.
package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"layerdoc/internal/layer"
	"layerdoc/internal/setting"
	"layerdoc/pkg/logging"
)

const subsystem = "EditorSession"

// ChangeHook is invoked after a setting value was mutated, with the key of
// the changed setting.
type ChangeHook func(key string)

// Session is one editing session over a layer's settings. Sessions are not
// safe for concurrent mutation; the owning front end serializes access.
type Session struct {
	id    uuid.UUID
	layer *layer.Layer
	data  *setting.DataSet
	hooks []ChangeHook
}

// NewSession creates a session over l with every setting at its default.
func NewSession(l *layer.Layer) (*Session, error) {
	data, err := l.NewDataSet()
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:    uuid.New(),
		layer: l,
		data:  data,
	}
	logging.Debug(subsystem, "session %s opened for %s", s.id, l.Key)
	return s, nil
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID { return s.id }

// Layer returns the layer being edited.
func (s *Session) Layer() *layer.Layer { return s.layer }

// Data returns the live value set of the session.
func (s *Session) Data() *setting.DataSet { return s.data }

// OnChange registers a hook invoked after every mutation.
func (s *Session) OnChange(hook ChangeHook) {
	s.hooks = append(s.hooks, hook)
}

// Value returns the current data record for key.
func (s *Session) Value(key string) (*setting.Data, error) {
	return s.data.Get(key)
}

// Bool returns the current boolean value of a bool-typed setting.
func (s *Session) Bool(key string) (bool, error) {
	return s.data.Bool(key)
}

// SetBool mutates a bool-typed setting and fires the change hooks.
func (s *Session) SetBool(key string, value bool) error {
	meta, err := s.layer.FindSetting(key)
	if err != nil {
		return err
	}
	if meta.Type != setting.TypeBool && meta.Type != setting.TypeBoolNumeric {
		return &setting.UnsupportedTypeError{Key: key, Type: meta.Type}
	}

	s.data.Set(&setting.Data{Key: key, Type: meta.Type, Bool: value})
	s.fireChange(key)
	return nil
}

// Set parses raw according to the setting's type and stores the result,
// firing the change hooks on success.
func (s *Session) Set(key, raw string) error {
	meta, err := s.layer.FindSetting(key)
	if err != nil {
		return err
	}

	data, err := setting.ParseValue(meta, raw)
	if err != nil {
		return err
	}

	s.data.Set(data)
	s.fireChange(key)
	return nil
}

// Format renders the current value of key in its canonical textual form.
func (s *Session) Format(key string) (string, error) {
	meta, err := s.layer.FindSetting(key)
	if err != nil {
		return "", err
	}
	data, err := s.data.Get(key)
	if err != nil {
		return "", err
	}
	return setting.FormatValue(meta, data)
}

// CheckDependence reports whether the setting identified by key is
// currently enabled given the session's live values.
func (s *Session) CheckDependence(key string) (bool, error) {
	meta, err := s.layer.FindSetting(key)
	if err != nil {
		return false, err
	}
	return setting.CheckDependence(meta, s.data), nil
}

func (s *Session) fireChange(key string) {
	for _, hook := range s.hooks {
		hook(key)
	}
}

// Watch observes the layer's manifest file and delivers its path on the
// returned channel every time it is written to or replaced, until ctx is
// canceled. Reacting to the modification, typically by reloading, is the
// caller's decision.
func (s *Session) Watch(ctx context.Context) (<-chan string, error) {
	if s.layer.ManifestPath == "" {
		return nil, fmt.Errorf("layer %s has no manifest path to watch", s.layer.Key)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating manifest watcher: %w", err)
	}

	// Watch the directory rather than the file itself: editors replacing
	// the manifest atomically would otherwise detach the watch.
	dir := filepath.Dir(s.layer.ManifestPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	changes := make(chan string, 1)
	go func() {
		defer watcher.Close()
		defer close(changes)

		target := filepath.Clean(s.layer.ManifestPath)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logging.Info(subsystem, "manifest %s changed on disk", event.Name)
				select {
				case changes <- s.layer.ManifestPath:
				default:
					// A pending notification already covers this change.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn(subsystem, "manifest watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}
