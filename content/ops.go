// seehuhn.de/go/lineart - trace drawings and text on PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package content

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/lineart/color"
	"seehuhn.de/go/lineart/graphics"
)

// do processes one operator.  This updates the graphics state and calls
// the device.
func (in *interp) do(op string, args []Object) error {
	getInteger := func() (Integer, bool) {
		if len(args) == 0 {
			return 0, false
		}
		x, ok := args[0].(Integer)
		args = args[1:]
		return x, ok
	}
	getNum := func() (float64, bool) {
		if len(args) == 0 {
			return 0, false
		}
		x, ok := getNumber(args[0])
		args = args[1:]
		return x, ok
	}
	getNums := func(n int) ([]float64, bool) {
		if len(args) < n {
			return nil, false
		}
		res := make([]float64, n)
		for i := range res {
			x, ok := getNum()
			if !ok {
				return nil, false
			}
			res[i] = x
		}
		return res, true
	}
	getMatrix := func() (matrix.Matrix, bool) {
		var m matrix.Matrix
		xx, ok := getNums(6)
		if ok {
			copy(m[:], xx)
		}
		return m, ok
	}
	getName := func() (Name, bool) {
		if len(args) == 0 {
			return "", false
		}
		x, ok := args[0].(Name)
		args = args[1:]
		return x, ok
	}
	getString := func() (String, bool) {
		if len(args) == 0 {
			return nil, false
		}
		x, ok := args[0].(String)
		args = args[1:]
		return x, ok
	}
	getArray := func() (Array, bool) {
		if len(args) == 0 {
			return nil, false
		}
		x, ok := args[0].(Array)
		args = args[1:]
		return x, ok
	}

	// Operators are listed in the order of table 50 ("Operator categories") in
	// ISO 32000-2:2020.

	switch op {

	// == General graphics state =========================================

	case "w": // line width
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.stroke.Width = x

	case "J": // line cap style
		x, ok := getInteger()
		if !ok {
			return errMissingOperand
		}
		if x < 0 || x > 2 {
			x = 0
		}
		in.stroke.Cap = graphics.LineCapStyle(x)

	case "j": // line join style
		x, ok := getInteger()
		if !ok {
			return errMissingOperand
		}
		if x < 0 || x > 2 {
			x = 0
		}
		in.stroke.Join = graphics.LineJoinStyle(x)

	case "M": // miter limit
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.stroke.MiterLimit = max(x, 1)

	case "d": // dash pattern and phase
		patObj, ok1 := getArray()
		pattern, ok2 := convertDashPattern(patObj)
		phase, ok3 := getNum()
		if !(ok1 && ok2 && ok3) {
			return errMissingOperand
		}
		in.stroke.Dash = pattern
		in.stroke.DashPhase = phase

	case "ri", "i": // rendering intent, flatness tolerance

	case "gs": // Set parameters from graphics state parameter dictionary
		name, ok := getName()
		if !ok {
			return errMissingOperand
		}
		e := in.res.ExtGState[name]
		if e == nil {
			return errUnknownName
		}
		e.applyTo(&in.state)

	// == Special graphics state =========================================

	case "q":
		in.pushState()

	case "Q":
		in.popState()

	case "cm":
		m, ok := getMatrix()
		if !ok {
			return errMissingOperand
		}
		in.ctm = m.Mul(in.ctm)

	// == Path construction ==============================================

	case "m":
		xx, ok := getNums(2)
		if !ok {
			return errMissingOperand
		}
		in.path.MoveTo(xx[0], xx[1])

	case "l":
		xx, ok := getNums(2)
		if !ok {
			return errMissingOperand
		}
		in.path.LineTo(xx[0], xx[1])

	case "c":
		xx, ok := getNums(6)
		if !ok {
			return errMissingOperand
		}
		in.path.CurveTo(xx[0], xx[1], xx[2], xx[3], xx[4], xx[5])

	case "v":
		xx, ok := getNums(4)
		if !ok {
			return errMissingOperand
		}
		in.path.CurveToV(xx[0], xx[1], xx[2], xx[3])

	case "y":
		xx, ok := getNums(4)
		if !ok {
			return errMissingOperand
		}
		in.path.CurveToY(xx[0], xx[1], xx[2], xx[3])

	case "h":
		in.path.Close()

	case "re":
		xx, ok := getNums(4)
		if !ok {
			return errMissingOperand
		}
		in.path.Rectangle(xx[0], xx[1], xx[2], xx[3])

	// == Path painting ==================================================

	case "S":
		in.paint(false, false, false, true)
	case "s":
		in.paint(true, false, false, true)
	case "f", "F":
		in.paint(false, true, false, false)
	case "f*":
		in.paint(false, true, true, false)
	case "B":
		in.paint(false, true, false, true)
	case "B*":
		in.paint(false, true, true, true)
	case "b":
		in.paint(true, true, false, true)
	case "b*":
		in.paint(true, true, true, true)
	case "n":
		in.paint(false, false, false, false)

	// == Clipping paths =================================================

	case "W":
		in.clipPending = true
		in.clipEvenOdd = false
	case "W*":
		in.clipPending = true
		in.clipEvenOdd = true

	// == Text objects ===================================================

	case "BT":
		in.beginText()

	case "ET":
		in.endText()

	// == Text state =====================================================

	case "Tc":
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.charSpace = x

	case "Tw":
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.wordSpace = x

	case "Tz":
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.hScale = x / 100

	case "TL":
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.leading = x

	case "Tf":
		name, ok1 := getName()
		size, ok2 := getNum()
		if !ok1 || !ok2 {
			return errMissingOperand
		}
		F := in.res.Font[name]
		if F == nil {
			return errUnknownName
		}
		in.font = F
		in.fontSize = size

	case "Tr":
		x, ok := getInteger()
		if !ok || x < 0 || x > 7 {
			return errMissingOperand
		}
		in.renderMode = graphics.TextRenderingMode(x)

	case "Ts":
		x, ok := getNum()
		if !ok {
			return errMissingOperand
		}
		in.rise = x

	// == Text positioning ===============================================

	case "Td":
		xx, ok := getNums(2)
		if !ok {
			return errMissingOperand
		}
		in.newLine(xx[0], xx[1])

	case "TD":
		xx, ok := getNums(2)
		if !ok {
			return errMissingOperand
		}
		in.leading = -xx[1]
		in.newLine(xx[0], xx[1])

	case "Tm":
		m, ok := getMatrix()
		if !ok {
			return errMissingOperand
		}
		in.tm = m
		in.tlm = m

	case "T*":
		in.newLine(0, -in.leading)

	// == Text showing ===================================================

	case "Tj":
		s, ok := getString()
		if !ok {
			return errMissingOperand
		}
		return in.showText(Array{s})

	case "'":
		s, ok := getString()
		if !ok {
			return errMissingOperand
		}
		in.newLine(0, -in.leading)
		return in.showText(Array{s})

	case "\"":
		aw, ok1 := getNum()
		ac, ok2 := getNum()
		s, ok3 := getString()
		if !(ok1 && ok2 && ok3) {
			return errMissingOperand
		}
		in.wordSpace = aw
		in.charSpace = ac
		in.newLine(0, -in.leading)
		return in.showText(Array{s})

	case "TJ":
		a, ok := getArray()
		if !ok {
			return errMissingOperand
		}
		return in.showText(a)

	// == Type 3 fonts ===================================================

	case "d0", "d1":

	// == Color ==========================================================

	case "CS", "cs":
		name, ok := getName()
		if !ok {
			return errMissingOperand
		}
		cs, err := in.colorSpace(name)
		if err != nil {
			return err
		}
		if op == "CS" {
			in.strokeColor = color.New(cs)
		} else {
			in.fillColor = color.New(cs)
		}

	case "SC", "SCN", "sc", "scn":
		target := &in.fillColor
		if op == "SC" || op == "SCN" {
			target = &in.strokeColor
		}
		n := target.Space.Channels()
		if len(args) < n {
			return errMissingOperand
		}
		values, ok := getNums(n)
		if !ok {
			return errMissingOperand
		}
		target.Values = values

	case "G", "g":
		xx, ok := getNums(1)
		if !ok {
			return errMissingOperand
		}
		in.setDeviceColor(op == "G", color.DeviceGray, xx)

	case "RG", "rg":
		xx, ok := getNums(3)
		if !ok {
			return errMissingOperand
		}
		in.setDeviceColor(op == "RG", color.DeviceRGB, xx)

	case "K", "k":
		xx, ok := getNums(4)
		if !ok {
			return errMissingOperand
		}
		in.setDeviceColor(op == "K", color.DeviceCMYK, xx)

	// == Shading patterns ===============================================

	case "sh":

	// == Inline images ==================================================

	case "BI":

	// == XObjects =======================================================

	case "Do":
		name, ok := getName()
		if !ok {
			return errMissingOperand
		}
		form := in.res.XObject[name]
		if form == nil {
			return errUnknownName
		}
		return in.doForm(form)

	// == Marked content =================================================

	case "MP", "DP":

	case "BMC":
		tag, ok := getName()
		if !ok {
			return errMissingOperand
		}
		in.beginMarkedContent(tag, nil)

	case "BDC":
		tag, ok := getName()
		if !ok || len(args) == 0 {
			return errMissingOperand
		}
		var props Dict
		switch a := args[0].(type) {
		case Dict:
			props = a
		case Name:
			props = in.res.Properties[a]
		}
		in.beginMarkedContent(tag, props)

	case "EMC":
		in.endMarkedContent()

	// == Compatibility ==================================================

	case "BX":
		in.compat++

	case "EX":
		if in.compat > 0 {
			in.compat--
		}

	default:
		return errUnknownOperator
	}
	return nil
}

func (in *interp) setDeviceColor(stroking bool, cs color.Space, values []float64) {
	c := color.Color{Space: cs, Values: values}
	if stroking {
		in.strokeColor = c
	} else {
		in.fillColor = c
	}
}

func (in *interp) colorSpace(name Name) (color.Space, error) {
	switch name {
	case "DeviceGray", "G":
		return color.DeviceGray, nil
	case "DeviceRGB", "RGB":
		return color.DeviceRGB, nil
	case "DeviceCMYK", "CMYK":
		return color.DeviceCMYK, nil
	case "Pattern":
		return &color.SpacePattern{}, nil
	}
	cs := in.res.ColorSpace[name]
	if cs == nil {
		return nil, errUnknownName
	}
	return cs, nil
}
