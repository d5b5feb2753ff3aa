// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/colorspace/base/errors"
)

// The color models.
const (
	Lrgb ID = iota + 1
	RGBNorm
	RGB
	RGBK
	RGBW
	CMY
	CMYK
	CMYW
	HSL
	HSB
	HWB
	HWBsl
	HCV
	HCY
	HSM
	HSP
	TSL
	RYB
	RCA
	RGV
	YUV
	YIQ
	YDbDr
	YES
	YCoCg
	YPbPr
	YCbCr
	XvYCC
	JPEG
	XYZ
	XyY
	Xy
	LCHxy
	RgG
	Rg
	LCHrg
	Lab
	LCHab
	Luv
	LCHuv
	HSLuv
	HPLuv
	HunterLab
	LCHabh
	UCS
	UVW
	LMS
	IPT
	Oklab
	OkLCh
	Okhsv
	Okhsl
	Okhwb
	Jzazbz
	JzCzhz
	JCh
	JMh
	Jsh
	QCh
	QMh
	Qsh

	numIDs
)

// entry is a registered model.
type entry struct {
	desc    Descriptor
	aliases []string
	impl    any

	// chain is the path from the model to its hubbed ancestor, inclusive.
	chain []ID
}

func nominal(sym, name string, min, max float64, unit string) Component {
	return Component{Name: name, Symbol: sym, Min: min, Max: max, Unit: unit, Kind: Nominal}
}

func percent(sym, name string) Component {
	return nominal(sym, name, 0, 100, "%")
}

func unit(sym, name string) Component {
	return nominal(sym, name, 0, 1, "")
}

func byteComp(sym, name string) Component {
	return Component{Name: name, Symbol: sym, Min: 0, Max: 255, Kind: Bounded}
}

func hueComp() Component {
	return Component{Name: "Hue", Symbol: "H", Min: 0, Max: 360, Unit: "°", Kind: Periodic}
}

func rgbComps(mk func(sym, name string) Component, prime string) []Component {
	return []Component{mk("R"+prime, "Red"), mk("G"+prime, "Green"), mk("B"+prime, "Blue")}
}

// manifest is the static table of all of the models.
var manifest = []entry{
	{desc: Descriptor{ID: Lrgb, Name: "Lrgb", Description: "Linear RGB relative to the profile primaries; the conversion hub.",
		Components: rgbComps(unit, "")}, aliases: []string{"linear"}, impl: lrgbModel{}},
	{desc: Descriptor{ID: RGBNorm, Name: "RGBNorm", Description: "Tone encoded R′G′B′ signal in [0, 1].",
		Components: rgbComps(unit, "′")}, aliases: []string{"srgb"}, impl: rgbNormModel{}},
	{desc: Descriptor{ID: RGB, Name: "RGB", Description: "Tone encoded RGB bytes.",
		Components: rgbComps(byteComp, ""), Quantized: true}, impl: rgbModel{}},
	{desc: Descriptor{ID: RGBK, Name: "RGBK", Description: "RGB bytes normalized to the brightest channel, with the remaining black K.",
		Components: append(rgbComps(byteComp, ""), byteComp("K", "Black")), Quantized: true}, impl: rgbkModel{}},
	{desc: Descriptor{ID: RGBW, Name: "RGBW", Description: "RGB bytes with the common white W separated out.",
		Components: append(rgbComps(byteComp, ""), byteComp("W", "White")), Quantized: true}, impl: rgbwModel{}},
	{desc: Descriptor{ID: CMY, Name: "CMY", Description: "Subtractive cyan, magenta, yellow.",
		Components: []Component{percent("C", "Cyan"), percent("M", "Magenta"), percent("Y", "Yellow")}}, impl: cmyModel{}},
	{desc: Descriptor{ID: CMYK, Name: "CMYK", Description: "Subtractive cyan, magenta, yellow, with the black K separated out.",
		Components: []Component{percent("C", "Cyan"), percent("M", "Magenta"), percent("Y", "Yellow"), percent("K", "Black")}}, impl: cmykModel{}},
	{desc: Descriptor{ID: CMYW, Name: "CMYW", Description: "Subtractive cyan, magenta, yellow, with the white W separated out.",
		Components: []Component{percent("C", "Cyan"), percent("M", "Magenta"), percent("Y", "Yellow"), percent("W", "White")}}, impl: cmywModel{}},
	{desc: Descriptor{ID: HSL, Name: "HSL", Description: "Hue, saturation, and lightness of the encoded RGB signal.",
		Components: []Component{hueComp(), percent("S", "Saturation"), percent("L", "Lightness")}}, impl: hslModel{}},
	{desc: Descriptor{ID: HSB, Name: "HSB", Description: "Hue, saturation, and brightness (value) of the encoded RGB signal.",
		Components: []Component{hueComp(), percent("S", "Saturation"), percent("B", "Brightness")}}, aliases: []string{"hsv"}, impl: hsbModel{}},
	{desc: Descriptor{ID: HWB, Name: "HWB", Description: "Hue, whiteness, and blackness.",
		Components: []Component{hueComp(), percent("W", "Whiteness"), percent("B", "Blackness")}}, impl: hwbModel{}},
	{desc: Descriptor{ID: HWBsl, Name: "HWBsl", Description: "Hue, whiteness, and blackness from HSL.",
		Components: []Component{hueComp(), percent("W", "Whiteness"), percent("B", "Blackness")}}, impl: hwbslModel{}},
	{desc: Descriptor{ID: HCV, Name: "HCV", Description: "Hue, chroma, and the gray the chroma is mixed with.",
		Components: []Component{hueComp(), percent("C", "Chroma"), percent("V", "Gray")}}, impl: hcvModel{}},
	{desc: Descriptor{ID: HCY, Name: "HCY", Description: "Hue, chroma (saturation), and intensity, as in HSI.",
		Components: []Component{hueComp(), percent("C", "Chroma"), nominal("Y", "Intensity", 0, 255, "")}}, aliases: []string{"hsi"}, impl: hcyModel{}},
	{desc: Descriptor{ID: HSM, Name: "HSM", Description: "Hue, saturation, and the 4:2:1 mixture of the encoded RGB signal.",
		Components: []Component{hueComp(), percent("S", "Saturation"), nominal("M", "Mixture", 0, 255, "")}}, impl: hsmModel{}},
	{desc: Descriptor{ID: HSP, Name: "HSP", Description: "Hue, saturation, and perceived brightness of the encoded RGB signal.",
		Components: []Component{hueComp(), percent("S", "Saturation"), nominal("P", "Perceived brightness", 0, 255, "")}}, impl: hspModel{}},
	{desc: Descriptor{ID: TSL, Name: "TSL", Description: "Tint, saturation, and lightness of the RGB chromaticity.",
		Components: []Component{{Name: "Tint", Symbol: "T", Min: 0, Max: 1, Kind: Periodic}, unit("S", "Saturation"), unit("L", "Lightness")}}, impl: tslModel{}},
	{desc: Descriptor{ID: RYB, Name: "RYB", Description: "Red, yellow, blue of the painter's color wheel.",
		Components: []Component{unit("R", "Red"), unit("Y", "Yellow"), unit("B", "Blue")}}, impl: rybModel{}},
	{desc: Descriptor{ID: RCA, Name: "RCA", Description: "Rose, chartreuse, azure tertiary primaries.",
		Components: []Component{nominal("R", "Rose", 0, 255, ""), nominal("C", "Chartreuse", 0, 255, ""), nominal("A", "Azure", 0, 255, "")}}, impl: rcaModel},
	{desc: Descriptor{ID: RGV, Name: "RGV", Description: "Orange, spring green, violet tertiary primaries.",
		Components: []Component{nominal("R", "Orange", 0, 255, ""), nominal("G", "Spring green", 0, 255, ""), nominal("V", "Violet", 0, 255, "")}}, impl: rgvModel},
	{desc: Descriptor{ID: YUV, Name: "YUV", Description: "Luma and chroma of the analog PAL system.",
		Components: []Component{unit("Y", "Luma"), nominal("U", "U", -0.436, 0.436, ""), nominal("V", "V", -0.615, 0.615, "")}}, impl: yuvModel},
	{desc: Descriptor{ID: YIQ, Name: "YIQ", Description: "Luma and chroma of the analog NTSC system.",
		Components: []Component{unit("Y", "Luma"), nominal("I", "In-phase", -0.5957, 0.5957, ""), nominal("Q", "Quadrature", -0.5226, 0.5226, "")}}, impl: yiqModel},
	{desc: Descriptor{ID: YDbDr, Name: "YDbDr", Description: "Luma and chroma of the SECAM and PAL-N systems.",
		Components: []Component{unit("Y", "Luma"), nominal("Db", "Db", -1.333, 1.333, ""), nominal("Dr", "Dr", -1.333, 1.333, "")}}, impl: ydbdrModel},
	{desc: Descriptor{ID: YES, Name: "YES", Description: "Luma with the E and S chroma factors.",
		Components: []Component{unit("Y", "Luma"), nominal("E", "E-factor", -0.5, 0.5, ""), nominal("S", "S-factor", -0.5, 0.5, "")}}, impl: yesModel},
	{desc: Descriptor{ID: YCoCg, Name: "YCoCg", Description: "Luma with chrominance orange and chrominance green.",
		Components: []Component{unit("Y", "Luma"), nominal("Co", "Chrominance orange", -0.5, 0.5, ""), nominal("Cg", "Chrominance green", -0.5, 0.5, "")}}, impl: ycocgModel},
	{desc: Descriptor{ID: YPbPr, Name: "YPbPr", Description: "Analog component video luma and color differences (BT.709).",
		Components: []Component{unit("Y", "Luma"), nominal("Pb", "Blue difference", -0.5, 0.5, ""), nominal("Pr", "Red difference", -0.5, 0.5, "")}}, impl: ypbprModel{}},
	{desc: Descriptor{ID: YCbCr, Name: "YCbCr", Description: "Digital video luma and color differences with 8 bit studio range.",
		Components: []Component{nominal("Y", "Luma", 16, 235, ""), nominal("Cb", "Blue difference", 16, 240, ""), nominal("Cr", "Red difference", 16, 240, "")}}, impl: studioModel{}},
	{desc: Descriptor{ID: XvYCC, Name: "xvYCC", Description: "YCbCr scaling extended to the full 8 bit range for wide gamut video.",
		Components: []Component{nominal("Y", "Luma", 0, 255, ""), nominal("Cb", "Blue difference", 0, 255, ""), nominal("Cr", "Red difference", 0, 255, "")}}, impl: studioModel{}},
	{desc: Descriptor{ID: JPEG, Name: "JPEG", Description: "Full range BT.601 YCbCr bytes, as used by JPEG.",
		Components: []Component{byteComp("Y", "Luma"), byteComp("Cb", "Blue difference"), byteComp("Cr", "Red difference")}, Quantized: true}, impl: jpegModel},
	{desc: Descriptor{ID: XYZ, Name: "XYZ", Description: "CIE 1931 tristimulus values, with Y = 1 at the profile white.",
		Components: []Component{unit("X", "X"), unit("Y", "Luminance"), unit("Z", "Z")}}, impl: xyzModel{}},
	{desc: Descriptor{ID: XyY, Name: "xyY", Description: "CIE 1931 chromaticity and luminance.",
		Components: []Component{unit("x", "x"), unit("y", "y"), unit("Y", "Luminance")}}, impl: xyYModel{}},
	{desc: Descriptor{ID: Xy, Name: "xy", Description: "CIE 1931 chromaticity at Y = 1.",
		Components: []Component{unit("x", "x"), unit("y", "y")}}, impl: xyModel{}},
	{desc: Descriptor{ID: LCHxy, Name: "LCHxy", Description: "Cylindrical xyY about the white chromaticity.",
		Components: []Component{percent("L", "Lightness"), nominal("C", "Chroma", 0, 150, ""), hueComp()}}, impl: lchxyModel},
	{desc: Descriptor{ID: RgG, Name: "rgG", Description: "Linear RGB chromaticity and green.",
		Components: []Component{unit("r", "r"), unit("g", "g"), unit("G", "Green")}}, impl: rgGModel{}},
	{desc: Descriptor{ID: Rg, Name: "rg", Description: "Linear RGB chromaticity at G = 1.",
		Components: []Component{unit("r", "r"), unit("g", "g")}}, impl: rgModel{}},
	{desc: Descriptor{ID: LCHrg, Name: "LCHrg", Description: "Cylindrical rgG about the equal energy chromaticity.",
		Components: []Component{percent("L", "Lightness"), nominal("C", "Chroma", 0, 150, ""), hueComp()}}, impl: lchrgModel},
	{desc: Descriptor{ID: Lab, Name: "Lab", Description: "CIE 1976 L*a*b* relative to the profile white.",
		Components: []Component{percent("L", "Lightness"), nominal("a", "a", -128, 128, ""), nominal("b", "b", -128, 128, "")}}, aliases: []string{"cielab"}, impl: labModel{}},
	{desc: Descriptor{ID: LCHab, Name: "LCHab", Description: "Cylindrical CIE L*a*b*.",
		Components: []Component{percent("L", "Lightness"), nominal("C", "Chroma", 0, 150, ""), hueComp()}}, aliases: []string{"lch"}, impl: polarModel{parent: Lab}},
	{desc: Descriptor{ID: Luv, Name: "Luv", Description: "CIE 1976 L*u*v* relative to the profile white.",
		Components: []Component{percent("L", "Lightness"), nominal("u", "u", -134, 224, ""), nominal("v", "v", -140, 122, "")}}, aliases: []string{"cieluv"}, impl: luvModel{}},
	{desc: Descriptor{ID: LCHuv, Name: "LCHuv", Description: "Cylindrical CIE L*u*v*.",
		Components: []Component{percent("L", "Lightness"), nominal("C", "Chroma", 0, 180, ""), hueComp()}}, impl: polarModel{parent: Luv}},
	{desc: Descriptor{ID: HSLuv, Name: "HSLuv", Description: "LCHuv with the chroma scaled to the profile gamut at each lightness and hue.",
		Components: []Component{hueComp(), percent("S", "Saturation"), percent("L", "Lightness")}}, impl: hsluvModel},
	{desc: Descriptor{ID: HPLuv, Name: "HPLuv", Description: "LCHuv with the chroma scaled to the largest gamut circle at each lightness.",
		Components: []Component{hueComp(), percent("P", "Pastel saturation"), percent("L", "Lightness")}}, impl: hpluvModel},
	{desc: Descriptor{ID: HunterLab, Name: "HunterLab", Description: "Hunter 1948 L, a, b.",
		Components: []Component{percent("L", "Lightness"), nominal("a", "a", -100, 100, ""), nominal("b", "b", -100, 100, "")}}, aliases: []string{"labh"}, impl: hunterModel{}},
	{desc: Descriptor{ID: LCHabh, Name: "LCHabh", Description: "Cylindrical Hunter Lab.",
		Components: []Component{percent("L", "Lightness"), nominal("C", "Chroma", 0, 100, ""), hueComp()}}, impl: polarModel{parent: HunterLab}},
	{desc: Descriptor{ID: UCS, Name: "UCS", Description: "CIE 1960 uniform color space U, V, W.",
		Components: []Component{unit("U", "U"), unit("V", "V"), unit("W", "W")}}, impl: ucsModel{}},
	{desc: Descriptor{ID: UVW, Name: "UVW", Description: "CIE 1964 U*, V*, W*.",
		Components: []Component{nominal("U*", "U*", -134, 224, ""), nominal("V*", "V*", -140, 122, ""), nominal("W*", "W*", -17, 100, "")}}, impl: uvwModel{}},
	{desc: Descriptor{ID: LMS, Name: "LMS", Description: "Cone responses of the profile adaptation transform.",
		Components: []Component{unit("L", "Long"), unit("M", "Medium"), unit("S", "Short")}}, impl: lmsModel{}},
	{desc: Descriptor{ID: IPT, Name: "IPT", Description: "Ebner and Fairchild intensity with protan and tritan opponent axes.",
		Components: []Component{unit("I", "Intensity"), nominal("P", "Protan", -1, 1, ""), nominal("T", "Tritan", -1, 1, "")}}, impl: iptModel{}},
	{desc: Descriptor{ID: Oklab, Name: "Oklab", Description: "Ottosson 2020 perceptual lightness and opponent axes.",
		Components: []Component{unit("L", "Lightness"), nominal("a", "a", -0.4, 0.4, ""), nominal("b", "b", -0.4, 0.4, "")}}, impl: oklabModel{}},
	{desc: Descriptor{ID: OkLCh, Name: "OkLCh", Description: "Cylindrical Oklab.",
		Components: []Component{unit("L", "Lightness"), nominal("C", "Chroma", 0, 0.4, ""), hueComp()}}, impl: polarModel{parent: Oklab}},
	{desc: Descriptor{ID: Okhsv, Name: "Okhsv", Description: "Hue, saturation, and value from Oklab fitted to the sRGB gamut.",
		Components: []Component{hueComp(), percent("S", "Saturation"), percent("V", "Value")}}, impl: okhsvModel{}},
	{desc: Descriptor{ID: Okhsl, Name: "Okhsl", Description: "Hue, saturation, and lightness from Oklab fitted to the sRGB gamut.",
		Components: []Component{hueComp(), percent("S", "Saturation"), percent("L", "Lightness")}}, impl: okhslModel{}},
	{desc: Descriptor{ID: Okhwb, Name: "Okhwb", Description: "Hue, whiteness, and blackness from Okhsv.",
		Components: []Component{hueComp(), percent("W", "Whiteness"), percent("B", "Blackness")}}, impl: hwbModel{parent: Okhsv}},
	{desc: Descriptor{ID: Jzazbz, Name: "Jzazbz", Description: "Safdar et al. 2017 perceptually uniform space for high dynamic range.",
		Components: []Component{unit("Jz", "Lightness"), nominal("az", "az", -0.5, 0.5, ""), nominal("bz", "bz", -0.5, 0.5, "")}}, impl: jzazbzModel{}},
	{desc: Descriptor{ID: JzCzhz, Name: "JzCzhz", Description: "Cylindrical Jzazbz.",
		Components: []Component{unit("Jz", "Lightness"), nominal("Cz", "Chroma", 0, 0.5, ""), hueComp()}}, impl: polarModel{parent: Jzazbz}},
	camEntry(JCh, "JCh", "lightness, chroma, and hue", 'J', 'C'),
	camEntry(JMh, "JMh", "lightness, colorfulness, and hue", 'J', 'M'),
	camEntry(Jsh, "Jsh", "lightness, saturation, and hue", 'J', 's'),
	camEntry(QCh, "QCh", "brightness, chroma, and hue", 'Q', 'C'),
	camEntry(QMh, "QMh", "brightness, colorfulness, and hue", 'Q', 'M'),
	camEntry(Qsh, "Qsh", "brightness, saturation, and hue", 'Q', 's'),
}

// registry holds the entries indexed by ID.
var registry [numIDs]*entry

// byName maps lower case names and aliases to IDs.
var byName = map[string]ID{}

func init() {
	for i := range manifest {
		e := &manifest[i]
		id := e.desc.ID
		if registry[id] != nil {
			panic(fmt.Sprintf("model: duplicate model %d", id))
		}
		registry[id] = e
		byName[strings.ToLower(e.desc.Name)] = id
		for _, a := range e.aliases {
			byName[a] = id
		}
		switch m := e.impl.(type) {
		case Hubbed:
			if id != Lrgb {
				e.desc.Parent = Lrgb
			}
		case Derived:
			e.desc.Parent = m.Parent()
		default:
			panic(fmt.Sprintf("model: %s is neither hubbed nor derived", e.desc.Name))
		}
	}
	for id := Lrgb; id < numIDs; id++ {
		e := registry[id]
		if e == nil {
			panic(fmt.Sprintf("model: model %d is not registered", id))
		}
		cur := id
		for {
			e.chain = append(e.chain, cur)
			if _, ok := registry[cur].impl.(Hubbed); ok {
				break
			}
			cur = registry[cur].desc.Parent
			if len(e.chain) > len(manifest) || registry[cur] == nil {
				panic(fmt.Sprintf("model: %s does not reach the hub", e.desc.Name))
			}
		}
	}
}

func lookupID(id ID) (*Descriptor, bool) {
	if id <= 0 || id >= numIDs || registry[id] == nil {
		return nil, false
	}
	return &registry[id].desc, true
}

// Describe returns the descriptor of the given model.
func Describe(id ID) (Descriptor, error) {
	d, ok := lookupID(id)
	if !ok {
		return Descriptor{}, errors.NewKind(errors.Unsupported, "model.Describe", id.String(), "unknown model")
	}
	return d.clone(), nil
}

func (d *Descriptor) clone() Descriptor {
	c := *d
	c.Components = slices.Clone(d.Components)
	return c
}

// Models returns the descriptors of all of the models, in ID order.
func Models() []Descriptor {
	ds := make([]Descriptor, 0, numIDs-1)
	for id := Lrgb; id < numIDs; id++ {
		ds = append(ds, registry[id].desc.clone())
	}
	return ds
}

// Lookup returns the model with the given case insensitive name or alias.
func Lookup(name string) (ID, error) {
	id, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.NewKind(errors.Unsupported, "model.Lookup", name, "unknown model")
	}
	return id, nil
}

// Chain returns the models that a color of the given model is
// converted through on the way to the hub, starting with itself.
func Chain(id ID) []ID {
	if _, ok := lookupID(id); !ok {
		return nil
	}
	return append([]ID(nil), registry[id].chain...)
}
