// Package grid parses truncated MGRS-style digit shorthand into metric
// coordinates.
//
// A grid token is 1-5 decimal digits standing in for a full 5-digit metric
// coordinate with trailing digits omitted; expansion right-pads with zeros, so
// "037" means 03700 metres. Tokens are kept as strings until expansion because
// leading zeros are significant.
package grid
