/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"embed"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Seednode/hangman/hangman"
)

//go:embed assets/*
var assets embed.FS

func humanReadableSize(bytes int64) string {
	const unit int64 = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := unit, 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB",
		float64(bytes)/float64(div),
		"kMGTPE"[exp])
}

// serveLobby lists every room with its occupancy and a join form, plus any
// signed notice carried back from a rejected join.
func serveLobby(cfg *Config, lobby *hangman.Lobby) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var b strings.Builder

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(fmt.Sprintf(`<link rel="stylesheet" href="%s/assets/hangman.css">`, cfg.prefix))
		b.WriteString(`<title>Hangman</title></head><body><main><h1>Hangman</h1>`)

		if token := r.URL.Query().Get("notice"); token != "" {
			if notice, ok := verifyNotice(cfg.secret, token); ok {
				b.WriteString(`<p class="notice">` + html.EscapeString(notice) + `</p>`)
			}
		}

		b.WriteString(`<ul class="rooms">`)
		for _, room := range lobby.Rooms() {
			st := room.Status()
			name := html.EscapeString(st.Name)

			b.WriteString(fmt.Sprintf(`<li><form method="get" action="%s/hangman/%s">`, cfg.prefix, name))
			b.WriteString(fmt.Sprintf(`<span class="room">%s</span> <span class="count">%d/%d</span> `, name, st.Players, hangman.Capacity))
			b.WriteString(`<input name="name" placeholder="Username" maxlength="32" required> `)
			if st.Players >= hangman.Capacity {
				b.WriteString(`<button type="submit" disabled>Full</button>`)
			} else {
				b.WriteString(`<button type="submit">Join</button>`)
			}
			b.WriteString(`</form></li>`)
		}
		b.WriteString(`</ul></main></body></html>`)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(b.String()))
	}
}

// serveRoom checks the requested name before handing out the room client, so
// obviously bad names bounce back to the lobby without opening a socket.
func serveRoom(cfg *Config, lobby *hangman.Lobby) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room, ok := lobby.Room(ps.ByName("room"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		name := r.URL.Query().Get("name")

		var rejected error
		switch {
		case name == "":
			rejected = hangman.ErrNameEmpty
		case room.Status().Players >= hangman.Capacity:
			rejected = hangman.ErrRoomFull
		default:
			rejected = hangman.CheckName(name)
		}

		if rejected != nil {
			logf(cfg, "SERVE: Bounced %q from %s to lobby: %v", name, room.Name(), rejected)
			http.Redirect(w, r, lobbyURL(cfg, rejected.Error()), http.StatusSeeOther)
			return
		}

		data, err := assets.ReadFile("assets/hangman.html")
		if err != nil {
			http.Error(w, "missing client", http.StatusInternalServerError)
			return
		}

		page := strings.NewReplacer(
			"{{prefix}}", cfg.prefix,
			"{{room}}", html.EscapeString(room.Name()),
			"{{qr}}", cfg.prefix+"/hangman/"+url.PathEscape(room.Name())+"/qr",
		).Replace(string(data))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(page))
	}
}

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveAssets(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		fname := "assets/" + strings.TrimPrefix(p.ByName("asset"), "/")
		if fname == "assets/hangman.html" {
			http.NotFound(w, r)
			return
		}

		data, err := assets.ReadFile(fname)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		switch strings.ToLower(filepath.Ext(fname)) {
		case ".css":
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case ".js":
			w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		}

		written, err := w.Write(data)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Asset %s (%s) to %s", fname, humanReadableSize(int64(written)), realIP(r))
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		data := `User-agent: *
Disallow: /hangman/`

		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		securityHeaders(cfg, w)

		_, err := w.Write([]byte(data))
		if err != nil {
			errs <- err

			return
		}
	}
}
