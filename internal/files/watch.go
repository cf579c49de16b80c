/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package files

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dynatrace/feature-toggles/internal/log"
)

// DefaultDebounce is the quiet period after the last change to a watched file before a change is reported.
const DefaultDebounce = 200 * time.Millisecond

// Watch reports changes of the file at path on the returned channel until ctx is done. Rapid successive changes are
// debounced into a single notification, and notifications are dropped while a previous one has not been received.
//
// The parent directory is watched instead of the file itself, so the file may be replaced (as many editors do on
// save) or not exist yet.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		var timer *time.Timer
		var closed bool
		var mu sync.Mutex

		defer func() {
			mu.Lock()
			closed = true
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			_ = watcher.Close()
			close(changes)
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					mu.Lock()
					defer mu.Unlock()
					if closed {
						return
					}
					select {
					case changes <- struct{}{}:
					default:
					}
				})
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("Error while watching %q: %v", path, err)
			}
		}
	}()

	return changes, nil
}
