// Package watch re-lints Perl sources when they change on disk.
//
// A fsnotify watcher observes a file or directory tree, filters events down
// to the configured extensions, and debounces bursts of changes (editors
// often write a file several times in quick succession) before invoking the
// re-lint callback.
package watch
