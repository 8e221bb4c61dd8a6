package srp

import "math"

// emitFragment runs the fragment shader for one covered pixel and, if it
// passes the depth test, writes the resulting color and depth to fb. x and
// y are integer pixel coordinates; fsIn.FragCoord.z is the fallback depth
// used when the shader leaves FragDepth as NaN.
func emitFragment(fb *Framebuffer, sp *ShaderProgram, x, y int, fsIn *FsIn) {
	fsOut := FsOut{FragDepth: math.NaN()}
	sp.FS.Shader(fsIn, &fsOut)

	depth := fsOut.FragDepth
	if math.IsNaN(depth) {
		depth = fsIn.FragCoord[2]
	}

	if !fb.DepthTest(x, y, depth) {
		return
	}
	fb.DrawPixel(x, y, depth, PackRGBA8888(fsOut.Color))
}
