package srp

import "testing"

func solidShaderProgram(color [4]float64) *ShaderProgram {
	return &ShaderProgram{
		FS: &FragmentShader{
			Shader: func(in *FsIn, out *FsOut) {
				out.Color = color
			},
		},
	}
}

func TestEmitFragmentWritesOnDepthPass(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear()
	sp := solidShaderProgram([4]float64{1, 0, 0, 1})

	fsIn := &FsIn{FragCoord: [4]float64{0.5, 0.5, 0.0, 1}}
	emitFragment(fb, sp, 0, 0, fsIn)

	if fb.ColorAt(0, 0) != PackRGBA8888([4]float64{1, 0, 0, 1}) {
		t.Errorf("ColorAt = %#x, want opaque red", fb.ColorAt(0, 0))
	}
	if fb.DepthAt(0, 0) != 0.0 {
		t.Errorf("DepthAt = %v, want 0.0", fb.DepthAt(0, 0))
	}
}

func TestEmitFragmentDiscardsOnDepthFail(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear()
	fb.DrawPixel(0, 0, 0.5, 0xAABBCCDD)
	sp := solidShaderProgram([4]float64{1, 1, 1, 1})

	fsIn := &FsIn{FragCoord: [4]float64{0.5, 0.5, 0.1, 1}}
	emitFragment(fb, sp, 0, 0, fsIn)

	if fb.ColorAt(0, 0) != 0xAABBCCDD {
		t.Error("emitFragment should not have overwritten a pixel that failed the depth test")
	}
}

func TestEmitFragmentUsesFragDepthOverride(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear()
	sp := &ShaderProgram{
		FS: &FragmentShader{
			Shader: func(in *FsIn, out *FsOut) {
				out.Color = [4]float64{0, 1, 0, 1}
				out.FragDepth = 0.9
			},
		},
	}

	fsIn := &FsIn{FragCoord: [4]float64{0.5, 0.5, -0.5, 1}}
	emitFragment(fb, sp, 1, 1, fsIn)

	if fb.DepthAt(1, 1) != 0.9 {
		t.Errorf("DepthAt = %v, want overridden 0.9", fb.DepthAt(1, 1))
	}
}

func TestEmitFragmentClampsColor(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Clear()
	sp := solidShaderProgram([4]float64{2.0, -1.0, 0.5, 1.0})

	fsIn := &FsIn{FragCoord: [4]float64{0.5, 0.5, 0, 1}}
	emitFragment(fb, sp, 0, 0, fsIn)

	got := fb.ColorAt(0, 0)
	r := got >> 24 & 0xFF
	g := got >> 16 & 0xFF
	if r != 0xFF {
		t.Errorf("red channel = %#x, want 0xff (clamped)", r)
	}
	if g != 0x00 {
		t.Errorf("green channel = %#x, want 0x00 (clamped)", g)
	}
}
