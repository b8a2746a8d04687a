package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/life/gol"
	"uk.ac.bris.cs/life/util"
)

// window draws boards into an SDL texture, one scale x scale square per cell.
type window struct {
	width, height int32
	scale         int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

func newWindow(width, height int32, scale int, fullscreen bool) (*window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("initialising SDL: %w", err)
	}

	var flags uint32 = sdl.WINDOW_SHOWN
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	sdlWindow, err := sdl.CreateWindow("Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(width, height); err != nil {
		renderer.Destroy()
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sizing renderer: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, width, height)
	if err != nil {
		renderer.Destroy()
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	return &window{
		width:    width,
		height:   height,
		scale:    scale,
		window:   sdlWindow,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, width*height*4),
	}, nil
}

func (w *window) destroy() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// cellAt is the board cell under a window position.
func (w *window) cellAt(x, y int32) util.Cell {
	return util.Scale(int(x), int(y), w.scale)
}

// draw rasterises the board into the pixel buffer; live cells are white.
// Cells that would fall outside the window are clipped.
func (w *window) draw(b gol.Board) {
	width, height := int(w.width), int(w.height)
	for cell, alive := range b.Cells() {
		var v byte
		if alive {
			v = 0xFF
		}
		for dy := 0; dy < w.scale; dy++ {
			py := cell.Y*w.scale + dy
			if py >= height {
				break
			}
			for dx := 0; dx < w.scale; dx++ {
				px := cell.X*w.scale + dx
				if px >= width {
					break
				}
				i := (py*width + px) * 4
				w.pixels[i], w.pixels[i+1], w.pixels[i+2], w.pixels[i+3] = v, v, v, 0xFF
			}
		}
	}
}

// renderFrame uploads the pixel buffer and presents it.
func (w *window) renderFrame() error {
	if err := w.texture.Update(nil, w.pixels, int(w.width)*4); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}
