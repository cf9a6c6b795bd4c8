/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"
)

// signNotice packs a lobby message into a tamper-evident token so that only
// server-issued rejections are shown on the lobby page.
func signNotice(secret, message string) string {
	body := base64.RawURLEncoding.EncodeToString([]byte(message))

	return body + "." + base64.RawURLEncoding.EncodeToString(noticeMAC(secret, body))
}

func verifyNotice(secret, token string) (string, bool) {
	body, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", false
	}

	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil || !hmac.Equal(got, noticeMAC(secret, body)) {
		return "", false
	}

	message, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return "", false
	}

	return string(message), true
}

func noticeMAC(secret, body string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))

	return mac.Sum(nil)
}

// lobbyURL is where rejected or departing players are sent.
func lobbyURL(cfg *Config, notice string) string {
	target := cfg.prefix + "/"
	if notice == "" {
		return target
	}

	return target + "?notice=" + url.QueryEscape(signNotice(cfg.secret, notice))
}
