// Package text renders value trees as indented human-readable text.
//
// This is presentation only: the output is not a codec format and is not
// parsed back. Layout is fixed (three-space indent, trailing commas,
// byte strings inline); color is optional:
//
//	text.Fprint(os.Stdout, v)
//	text.Fprint(os.Stdout, v, text.PrintColors(text.NewColors()))
package text
