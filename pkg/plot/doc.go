// Package plot renders tidy tables to raster images.
//
// Two figure kinds are supported:
//
//   - [Facet]: one boxplot-with-jitter panel per category, laid out in rows of
//     [Options].Wrap panels. Each panel has a strip colored by the category's
//     style with the category name in white bold text.
//   - [Pairs]: a scatterplot matrix of the categories. The lower triangle
//     holds scatterplots colored by a group column, the diagonal holds
//     histograms, and the upper triangle prints the Pearson correlation with
//     significance stars, overall and per group.
//
// Each panel is drawn by go-chart with explicit axis ranges; box, point and
// bar marks are custom renderables in the panel's canvas box. Panels are
// then composed onto one RGBA canvas together with strips and text.
//
// All sizes in [Options] are physical: inches for the figure, points for
// marks and text. They are converted to pixels at [Options].DPI, so changing
// the DPI changes the resolution but not the look of the figure.
//
// NaN values (missing cells) are never drawn.
package plot
