// Package session turns the launcher's game session markers into
// [models.SessionEvent] values.
//
// While a game runs, the launcher keeps an empty "<appid>.running" file in a
// marker directory. [DirSource] watches that directory with fsnotify.
package session
