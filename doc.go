// Package spriterender holds the pieces shared by every layer of the sprite
// renderer: the error taxonomy returned by loaders and render calls, and the
// colour parsing used at the boundary with callers.
//
// The engine itself lives in the sheet, compositor and modes packages. The
// export and imageprint packages consume finished frames.
package spriterender
