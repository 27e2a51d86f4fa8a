package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	youtubeIDPattern = regexp.MustCompile(`^.*(?:youtu\.be/|v/|/u/\w/|embed/|watch\?)\??v?=?([^#&?]*).*`)
	vimeoIDPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// EmbedVideoURL rewrites a YouTube or Vimeo link into that platform's
// embeddable-player URL. Direct file URLs and links that don't match a
// known platform pattern are returned unchanged.
func EmbedVideoURL(videoURL string) string {
	switch {
	case strings.Contains(videoURL, "youtube.com") || strings.Contains(videoURL, "youtu.be"):
		match := youtubeIDPattern.FindStringSubmatch(videoURL)
		// YouTube video ids are 11 characters
		if match != nil && len(match[1]) == 11 {
			return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", match[1])
		}
	case strings.Contains(videoURL, "vimeo.com"):
		match := vimeoIDPattern.FindStringSubmatch(videoURL)
		if match != nil {
			return fmt.Sprintf("https://player.vimeo.com/video/%s?autoplay=1", match[1])
		}
	}
	return videoURL
}
