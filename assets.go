package showcase

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for manifest assets
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/showcase/specialtext"
)

// ErrUnknownBundle is returned when a bundle name is neither in the manifest
// nor registered directly.
var ErrUnknownBundle = errors.New("showcase: unknown bundle")

// Manifest lists the asset bundles a program can load. Its JSON form is
//
//	{"bundles": [{"name": "cards", "assets": [{"name": "card-back", "src": "cards/back.png"}]}]}
//
// Sources ending in .json are TexturePacker atlases; every frame in them is
// registered under its frame name.
type Manifest struct {
	Bundles []BundleManifest `json:"bundles"`
}

// BundleManifest is one named group of assets.
type BundleManifest struct {
	Name   string          `json:"name"`
	Assets []AssetManifest `json:"assets"`
}

// AssetManifest maps an asset name to its source path.
type AssetManifest struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

// AssetStore holds named images grouped in bundles. A bundle is loaded once;
// after that its images are available by name from any screen.
type AssetStore struct {
	fsys    fs.FS
	bundles map[string]BundleManifest
	images  map[string]*ebiten.Image
	loaded  map[string]bool
}

// NewAssetStore returns an empty store with no manifest.
func NewAssetStore() *AssetStore {
	return &AssetStore{
		bundles: make(map[string]BundleManifest),
		images:  make(map[string]*ebiten.Image),
		loaded:  make(map[string]bool),
	}
}

// LoadManifest reads the manifest at name from fsys. Sources are resolved
// relative to fsys, not to the manifest.
func (s *AssetStore) LoadManifest(fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("showcase: read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("showcase: parse manifest %s: %w", name, err)
	}
	s.fsys = fsys
	for _, b := range m.Bundles {
		s.bundles[b.Name] = b
	}
	return nil
}

// Register adds img to bundle under name and marks the bundle loaded. Used
// for generated art that never comes from a file.
func (s *AssetStore) Register(bundle, name string, img *ebiten.Image) {
	s.images[name] = img
	s.loaded[bundle] = true
}

// BundleLoaded reports whether bundle has been loaded or registered.
func (s *AssetStore) BundleLoaded(name string) bool {
	return s.loaded[name]
}

// BundlesLoaded reports whether every bundle in names is loaded.
func (s *AssetStore) BundlesLoaded(names []string) bool {
	for _, n := range names {
		if !s.loaded[n] {
			return false
		}
	}
	return true
}

// LoadBundles loads every bundle in names that is not loaded yet. progress,
// if non-nil, receives the fraction of assets done after each asset and a
// final 1. On error, bundles loaded before the failure stay loaded.
func (s *AssetStore) LoadBundles(names []string, progress func(float64)) error {
	var pending []BundleManifest
	total := 0
	for _, n := range names {
		if s.loaded[n] {
			continue
		}
		b, ok := s.bundles[n]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownBundle, n)
		}
		pending = append(pending, b)
		total += len(b.Assets)
	}

	done := 0
	for _, b := range pending {
		for _, a := range b.Assets {
			if err := s.loadAsset(a); err != nil {
				return fmt.Errorf("showcase: bundle %q: %w", b.Name, err)
			}
			done++
			if progress != nil && total > 0 {
				progress(float64(done) / float64(total))
			}
		}
		s.loaded[b.Name] = true
	}
	if progress != nil {
		progress(1)
	}
	return nil
}

func (s *AssetStore) loadAsset(a AssetManifest) error {
	if s.fsys == nil {
		return fmt.Errorf("asset %q: no manifest loaded", a.Name)
	}
	if strings.EqualFold(path.Ext(a.Src), ".json") {
		return s.loadAtlasFile(a.Src)
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, a.Src)
	if err != nil {
		return fmt.Errorf("asset %q: %w", a.Name, err)
	}
	s.images[a.Name] = img
	return nil
}

func (s *AssetStore) loadAtlasFile(src string) error {
	data, err := fs.ReadFile(s.fsys, src)
	if err != nil {
		return fmt.Errorf("atlas %s: %w", src, err)
	}
	pageNames, err := atlasPageNames(data)
	if err != nil {
		return err
	}
	dir := path.Dir(src)
	pages := make([]*ebiten.Image, len(pageNames))
	for i, p := range pageNames {
		img, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, path.Join(dir, p))
		if err != nil {
			return fmt.Errorf("atlas %s page %d: %w", src, i, err)
		}
		pages[i] = img
	}
	atlas, err := LoadAtlas(data, pages)
	if err != nil {
		return err
	}
	s.AddAtlas(atlas)
	return nil
}

// AddAtlas registers every frame of atlas by name. It does not mark any
// bundle loaded.
func (s *AssetStore) AddAtlas(atlas *Atlas) {
	for name := range atlas.frames {
		s.images[name] = atlas.Image(name)
	}
}

// Image returns the image registered as name.
func (s *AssetStore) Image(name string) (*ebiten.Image, error) {
	img, ok := s.images[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", specialtext.ErrUnresolvedAsset, name)
	}
	return img, nil
}

// ImageSize implements specialtext.ImageSizer.
func (s *AssetStore) ImageSize(name string) (specialtext.Size, error) {
	img, err := s.Image(name)
	if err != nil {
		return specialtext.Size{}, err
	}
	b := img.Bounds()
	return specialtext.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}

// --- TexturePacker atlases ---

// Frame is the location of one named image inside an atlas page.
type Frame struct {
	Page   int
	Bounds image.Rectangle
}

// Atlas holds atlas page images and the frames cut from them.
type Atlas struct {
	Pages  []*ebiten.Image
	frames map[string]Frame
}

// Frame returns the frame called name.
func (a *Atlas) Frame(name string) (Frame, bool) {
	f, ok := a.frames[name]
	return f, ok
}

// Len returns the number of frames.
func (a *Atlas) Len() int {
	return len(a.frames)
}

// Image returns the frame called name as a sub-image of its page, or nil.
func (a *Atlas) Image(name string) *ebiten.Image {
	f, ok := a.frames[name]
	if !ok {
		return nil
	}
	return a.Pages[f.Page].SubImage(f.Bounds).(*ebiten.Image)
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists). Rotated frames are rejected;
// trim offsets are ignored and frames render at their packed size.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("showcase: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:  pages,
		frames: make(map[string]Frame),
	}

	var err error
	switch {
	case probe.Textures != nil:
		err = parseArrayFormat(probe.Textures, atlas)
	case probe.Frames != nil:
		err = parseHashFrames(probe.Frames, 0, atlas)
	default:
		err = errors.New(`showcase: atlas JSON has neither "frames" nor "textures" key`)
	}
	if err != nil {
		return nil, err
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// atlasPageNames returns the page image file names an atlas refers to.
func atlasPageNames(jsonData []byte) ([]string, error) {
	var probe struct {
		Textures []jsonTexturePage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("showcase: failed to parse atlas JSON: %w", err)
	}
	if len(probe.Textures) > 0 {
		names := make([]string, len(probe.Textures))
		for i, t := range probe.Textures {
			names[i] = t.Image
		}
		return names, nil
	}
	if probe.Meta.Image == "" {
		return nil, errors.New("showcase: atlas JSON names no page image")
	}
	return []string{probe.Meta.Image}, nil
}

func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("showcase: failed to parse atlas frames: %w", err)
	}
	return addFrames(frames, page, atlas)
}

func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("showcase: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		if err := addFrames(tex.Frames, i, atlas); err != nil {
			return err
		}
	}
	return nil
}

func addFrames(frames map[string]jsonFrame, page int, atlas *Atlas) error {
	if page >= len(atlas.Pages) {
		return fmt.Errorf("showcase: atlas page %d has no image", page)
	}
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("showcase: atlas frame %q is rotated", name)
		}
		r := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
		if !r.In(atlas.Pages[page].Bounds()) {
			return fmt.Errorf("showcase: atlas frame %q lies outside page %d", name, page)
		}
		atlas.frames[name] = Frame{Page: page, Bounds: r}
	}
	return nil
}
