package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"defensa_juridica_web/config"
	"defensa_juridica_web/services"

	"github.com/spf13/cobra"
)

func uploadMediaCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "upload-media FILE...",
		Short: "Upload carousel images to the media storage",
		Long: `Uploads each file under the given key prefix. With R2 configured the
files go to the bucket, otherwise to MEDIA_DIR.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			services.InitializeStorage(cfg)

			for _, file := range args {
				key, err := mediaKey(prefix, file)
				if err != nil {
					return err
				}
				url, err := uploadFile(cmd.Context(), services.Storage, file, key)
				if err != nil {
					return err
				}
				fmt.Printf("%s -> %s\n", file, url)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "slides", "key prefix inside the media storage")
	return cmd
}

// mediaKey builds the storage key of file under prefix
func mediaKey(prefix, file string) (string, error) {
	return services.CleanMediaKey(path.Join(prefix, filepath.Base(file)))
}

func uploadFile(ctx context.Context, storage services.MediaStorage, file, key string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", file, err)
	}
	if err := services.ValidateMediaUpload(file, f, info.Size()); err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}

	result, err := storage.Put(ctx, f, key, services.ContentTypeFor(key), info.Size())
	if err != nil {
		return "", err
	}
	return result.URL, nil
}
