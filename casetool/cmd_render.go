package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/unixpickle/gocube"
	"github.com/unixpickle/llcases"
	"github.com/unixpickle/rubiksimg"
)

var renderSize int

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <case id> <output dir>",
		Short: "Render one image per move of a case's solution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RenderCmd(config.Store(), args[0], args[1], renderSize)
		},
	}
	cmd.Flags().IntVar(&renderSize, "size", 512, "image width and height in pixels")
	return cmd
}

func RenderCmd(store llcases.Store, id, outDir string, size int) error {
	records, err := store.Load()
	if err != nil {
		return err
	}
	var record *llcases.CaseRecord
	for i := range records {
		if records[i].ID == id {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return fmt.Errorf("no case with id %q", id)
	}

	alg, err := llcases.ParseAlgorithm(record.Solution)
	if err != nil {
		return err
	}
	cube, err := llcases.ReplayCubie(llcases.Invert(alg))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for i := 0; i <= len(alg); i++ {
		subPath := filepath.Join(outDir, fmt.Sprintf("cube%d.png", i))
		if err := writeCubeImage(subPath, cube, size); err != nil {
			return err
		}
		if i < len(alg) {
			if err := llcases.ApplyCubie(cube, alg[i:i+1]); err != nil {
				return err
			}
		}
	}
	fmt.Println("Wrote", len(alg)+1, "images to", outDir)
	return nil
}

func writeCubeImage(path string, cube *gocube.CubieCube, size int) error {
	img := rubiksimg.GenerateImage(size, cube.StickerCube())
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(outFile, img); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}
