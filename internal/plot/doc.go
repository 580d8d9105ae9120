// Package plot implements the function plot: a set of user expressions, a
// sampling mode and the axes they are plotted against.
//
// A plot runs in one of seven modes. Three are surface modes, where one
// coordinate is a function of the other two ("z=fn(x,y)" and its
// permutations). One is the parametric mode "x,y,z=fns(t)", where all three
// coordinates are functions of a parameter t running from 0 to 1. The
// remaining three are dependent line modes ("x,y=fns(z)" and permutations),
// where two coordinates are functions of the third, sampled over that axis's
// plotted range.
//
// Failures follow an absence model: an unset or broken expression, a missing
// axis or an empty log range mean there is nothing to plot, reported through
// a false second return, never an error. Points that are merely undefined
// somewhere keep the rest of the plot alive; the undefined samples travel as
// NaN and are dropped when geometry fragments are extracted.
package plot
