// Package sample builds the 1D and 2D sample-point arrays the function
// widgets are evaluated over. Sampling is linear- and log-aware: logarithmic
// axes are interpolated uniformly in log10 space and exponentiated back, so
// samples are evenly spaced on screen rather than in data units.
package sample
