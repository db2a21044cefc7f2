// Command admin uploads one media file end to end: it asks the API for a
// presigned URL, PUTs the file bytes, and writes the catalog record.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darshan/catalog/internal/client"
	"github.com/darshan/catalog/internal/config"
)

func main() {
	file := flag.String("file", "", "path of the media file to upload (required)")
	mediaType := flag.String("type", "", `"wallpaper" or "music" (required)`)
	title := flag.String("title", "", "item title (required)")
	caption := flag.String("caption", "", "caption")
	shloka := flag.String("shloka", "", "devotional verse text")
	meaning := flag.String("meaning", "", "verse translation")
	ratio := flag.String("ratio", "", `aspect ratio (default "16:9")`)
	palette := flag.String("palette", "", "comma-separated color list")
	style := flag.String("style", "", "style/genre tag")
	thumbKey := flag.String("thumb-key", "", "key of an already-uploaded thumbnail")
	apiBase := flag.String("api", "", "API base URL (default from API_BASE_URL)")
	token := flag.String("token", "", "admin Bearer token, if the API requires one")
	flag.Parse()

	if *file == "" || *mediaType == "" || *title == "" {
		flag.Usage()
		os.Exit(2)
	}

	base := *apiBase
	if base == "" {
		base = config.Load().APIBaseURL
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Fatalf("stat %s: %v", *file, err)
	}

	ext := strings.TrimPrefix(filepath.Ext(*file), ".")
	contentType := mime.TypeByExtension(filepath.Ext(*file))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var colors []string
	if *palette != "" {
		for _, c := range strings.Split(*palette, ",") {
			colors = append(colors, strings.TrimSpace(c))
		}
	}

	var opts []client.Option
	if *token != "" {
		opts = append(opts, client.WithToken(*token))
	}
	c := client.New(base, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	created, err := c.UploadMedia(ctx, client.UploadRequest{
		File:        f,
		Size:        info.Size(),
		ContentType: contentType,
		FileExt:     ext,
		Type:        *mediaType,
		Title:       *title,
		Caption:     *caption,
		Shloka:      *shloka,
		Meaning:     *meaning,
		Ratio:       *ratio,
		Palette:     colors,
		Style:       *style,
		ThumbKey:    *thumbKey,
	})
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}

	fmt.Printf("created %s (id=%s, fileKey=%s)\n", created.Item.Title, created.ID, created.Item.FileKey)
}
