package gb

// Table data transcribed from the published dimension tables. Area in cm²,
// weight in kg/m, surface in m²/m.

// GB/T 706 - Hot rolled equal and unequal leg angles
var angleRows = []Section{
	{Designation: "20x3", Dims: []float64{20, 20, 3}, Area: 1.132, Weight: 0.889, Surface: 0.078},
	{Designation: "20x4", Dims: []float64{20, 20, 4}, Area: 1.459, Weight: 1.145, Surface: 0.077},
	{Designation: "25x3", Dims: []float64{25, 25, 3}, Area: 1.432, Weight: 1.124, Surface: 0.098},
	{Designation: "25x4", Dims: []float64{25, 25, 4}, Area: 1.859, Weight: 1.459, Surface: 0.097},
	{Designation: "30x3", Dims: []float64{30, 30, 3}, Area: 1.749, Weight: 1.373, Surface: 0.117},
	{Designation: "30x4", Dims: []float64{30, 30, 4}, Area: 2.276, Weight: 1.786, Surface: 0.117},
	{Designation: "36x3", Dims: []float64{36, 36, 3}, Area: 2.109, Weight: 1.656, Surface: 0.141},
	{Designation: "36x4", Dims: []float64{36, 36, 4}, Area: 2.756, Weight: 2.163, Surface: 0.141},
	{Designation: "36x5", Dims: []float64{36, 36, 5}, Area: 3.382, Weight: 2.654, Surface: 0.141},
	{Designation: "40x3", Dims: []float64{40, 40, 3}, Area: 2.359, Weight: 1.852, Surface: 0.157},
	{Designation: "40x4", Dims: []float64{40, 40, 4}, Area: 3.086, Weight: 2.422, Surface: 0.157},
	{Designation: "40x5", Dims: []float64{40, 40, 5}, Area: 3.791, Weight: 2.976, Surface: 0.156},
	{Designation: "45x4", Dims: []float64{45, 45, 4}, Area: 3.486, Weight: 2.736, Surface: 0.177},
	{Designation: "45x5", Dims: []float64{45, 45, 5}, Area: 4.292, Weight: 3.369, Surface: 0.176},
	{Designation: "50x4", Dims: []float64{50, 50, 4}, Area: 3.897, Weight: 3.059, Surface: 0.197},
	{Designation: "50x5", Dims: []float64{50, 50, 5}, Area: 4.803, Weight: 3.770, Surface: 0.196},
	{Designation: "50x6", Dims: []float64{50, 50, 6}, Area: 5.688, Weight: 4.465, Surface: 0.196},
	{Designation: "56x5", Dims: []float64{56, 56, 5}, Area: 5.415, Weight: 4.251, Surface: 0.220},
	{Designation: "63x5", Dims: []float64{63, 63, 5}, Area: 6.143, Weight: 4.822, Surface: 0.248},
	{Designation: "63x6", Dims: []float64{63, 63, 6}, Area: 7.288, Weight: 5.721, Surface: 0.247},
	{Designation: "70x5", Dims: []float64{70, 70, 5}, Area: 6.875, Weight: 5.397, Surface: 0.275},
	{Designation: "70x6", Dims: []float64{70, 70, 6}, Area: 8.160, Weight: 6.406, Surface: 0.275},
	{Designation: "75x5", Dims: []float64{75, 75, 5}, Area: 7.412, Weight: 5.818, Surface: 0.295},
	{Designation: "75x6", Dims: []float64{75, 75, 6}, Area: 8.797, Weight: 6.905, Surface: 0.294},
	{Designation: "80x6", Dims: []float64{80, 80, 6}, Area: 9.397, Weight: 7.376, Surface: 0.314},
	{Designation: "80x8", Dims: []float64{80, 80, 8}, Area: 12.303, Weight: 9.658, Surface: 0.314},
	{Designation: "90x8", Dims: []float64{90, 90, 8}, Area: 13.944, Weight: 10.946, Surface: 0.353},
	{Designation: "100x8", Dims: []float64{100, 100, 8}, Area: 15.638, Weight: 12.276, Surface: 0.393},
	{Designation: "100x10", Dims: []float64{100, 100, 10}, Area: 19.261, Weight: 15.120, Surface: 0.392},
	{Designation: "125x10", Dims: []float64{125, 125, 10}, Area: 24.373, Weight: 19.133, Surface: 0.491},
	{Designation: "63x40x5", Dims: []float64{63, 40, 5}, Area: 4.993, Weight: 3.920, Surface: 0.202},
	{Designation: "75x50x6", Dims: []float64{75, 50, 6}, Area: 7.260, Weight: 5.699, Surface: 0.244},
	{Designation: "100x63x8", Dims: []float64{100, 63, 8}, Area: 12.584, Weight: 9.878, Surface: 0.319},
	{Designation: "125x80x10", Dims: []float64{125, 80, 10}, Area: 19.712, Weight: 15.474, Surface: 0.402},
}

// GB/T 706 - Hot rolled channels, dims h x b x tw x tf
var channelRows = []Section{
	{Designation: "5", Dims: []float64{50, 37, 4.5, 7}, Area: 6.925, Weight: 5.438, Surface: 0.226},
	{Designation: "6.3", Dims: []float64{63, 40, 4.8, 7.5}, Area: 8.446, Weight: 6.634, Surface: 0.262},
	{Designation: "8", Dims: []float64{80, 43, 5, 8}, Area: 10.24, Weight: 8.045, Surface: 0.307},
	{Designation: "10", Dims: []float64{100, 48, 5.3, 8.5}, Area: 12.74, Weight: 10.007, Surface: 0.365},
	{Designation: "12.6", Dims: []float64{126, 53, 5.5, 9}, Area: 15.69, Weight: 12.318, Surface: 0.423},
	{Designation: "14a", Dims: []float64{140, 58, 6, 9.5}, Area: 18.51, Weight: 14.535, Surface: 0.480},
	{Designation: "14b", Dims: []float64{140, 60, 8, 9.5}, Area: 21.31, Weight: 16.733, Surface: 0.484},
	{Designation: "16a", Dims: []float64{160, 63, 6.5, 10}, Area: 21.95, Weight: 17.24, Surface: 0.538},
	{Designation: "16", Dims: []float64{160, 65, 8.5, 10}, Area: 25.15, Weight: 19.752, Surface: 0.542},
	{Designation: "18a", Dims: []float64{180, 68, 7, 10.5}, Area: 25.69, Weight: 20.174, Surface: 0.596},
	{Designation: "18", Dims: []float64{180, 70, 9, 10.5}, Area: 29.29, Weight: 23.000, Surface: 0.600},
	{Designation: "20a", Dims: []float64{200, 73, 7, 11}, Area: 28.83, Weight: 22.637, Surface: 0.654},
	{Designation: "20", Dims: []float64{200, 75, 9, 11}, Area: 32.83, Weight: 25.777, Surface: 0.658},
	{Designation: "22a", Dims: []float64{220, 77, 7, 11.5}, Area: 31.84, Weight: 24.999, Surface: 0.709},
	{Designation: "22", Dims: []float64{220, 79, 9, 11.5}, Area: 36.24, Weight: 28.453, Surface: 0.713},
	{Designation: "25a", Dims: []float64{250, 78, 7, 12}, Area: 34.91, Weight: 27.410, Surface: 0.752},
	{Designation: "25b", Dims: []float64{250, 80, 9, 12}, Area: 39.91, Weight: 31.335, Surface: 0.756},
	{Designation: "28a", Dims: []float64{280, 82, 7.5, 12.5}, Area: 40.02, Weight: 31.427, Surface: 0.811},
	{Designation: "28b", Dims: []float64{280, 84, 9.5, 12.5}, Area: 45.62, Weight: 35.823, Surface: 0.815},
	{Designation: "32a", Dims: []float64{320, 88, 8, 14}, Area: 48.50, Weight: 38.083, Surface: 0.913},
	{Designation: "32b", Dims: []float64{320, 90, 10, 14}, Area: 54.90, Weight: 43.107, Surface: 0.917},
	{Designation: "36a", Dims: []float64{360, 96, 9, 16}, Area: 60.89, Weight: 47.814, Surface: 1.053},
	{Designation: "40a", Dims: []float64{400, 100, 10.5, 18}, Area: 75.04, Weight: 58.928, Surface: 1.144},
}

// GB/T 706 - Hot rolled I-beams, dims h x b x tw x tf
var ibeamRows = []Section{
	{Designation: "10", Dims: []float64{100, 68, 4.5, 7.6}, Area: 14.33, Weight: 11.261, Surface: 0.432},
	{Designation: "12", Dims: []float64{120, 74, 5, 8.4}, Area: 17.80, Weight: 13.987, Surface: 0.493},
	{Designation: "12.6", Dims: []float64{126, 74, 5, 8.4}, Area: 18.10, Weight: 14.223, Surface: 0.505},
	{Designation: "14", Dims: []float64{140, 80, 5.5, 9.1}, Area: 21.50, Weight: 16.890, Surface: 0.553},
	{Designation: "16", Dims: []float64{160, 88, 6, 9.9}, Area: 26.11, Weight: 20.513, Surface: 0.621},
	{Designation: "18", Dims: []float64{180, 94, 6.5, 10.7}, Area: 30.74, Weight: 24.143, Surface: 0.681},
	{Designation: "20a", Dims: []float64{200, 100, 7, 11.4}, Area: 35.55, Weight: 27.929, Surface: 0.742},
	{Designation: "20b", Dims: []float64{200, 102, 9, 11.4}, Area: 39.55, Weight: 31.069, Surface: 0.746},
	{Designation: "22a", Dims: []float64{220, 110, 7.5, 12.3}, Area: 42.10, Weight: 33.070, Surface: 0.817},
	{Designation: "22b", Dims: []float64{220, 112, 9.5, 12.3}, Area: 46.50, Weight: 36.524, Surface: 0.821},
	{Designation: "25a", Dims: []float64{250, 116, 8, 13}, Area: 48.51, Weight: 38.105, Surface: 0.898},
	{Designation: "25b", Dims: []float64{250, 118, 10, 13}, Area: 53.51, Weight: 42.030, Surface: 0.902},
	{Designation: "28a", Dims: []float64{280, 122, 8.5, 13.7}, Area: 55.37, Weight: 43.492, Surface: 0.978},
	{Designation: "28b", Dims: []float64{280, 124, 10.5, 13.7}, Area: 60.97, Weight: 47.888, Surface: 0.982},
	{Designation: "32a", Dims: []float64{320, 130, 9.5, 15}, Area: 67.12, Weight: 52.717, Surface: 1.084},
	{Designation: "32b", Dims: []float64{320, 132, 11.5, 15}, Area: 73.52, Weight: 57.741, Surface: 1.088},
	{Designation: "32c", Dims: []float64{320, 134, 13.5, 15}, Area: 79.92, Weight: 62.765, Surface: 1.092},
	{Designation: "36a", Dims: []float64{360, 136, 10, 15.8}, Area: 76.44, Weight: 60.037, Surface: 1.185},
	{Designation: "40a", Dims: []float64{400, 142, 10.5, 16.5}, Area: 86.07, Weight: 67.598, Surface: 1.285},
	{Designation: "45a", Dims: []float64{450, 150, 11.5, 18}, Area: 102.4, Weight: 80.420, Surface: 1.411},
	{Designation: "50a", Dims: []float64{500, 158, 12, 20}, Area: 119.2, Weight: 93.654, Surface: 1.539},
	{Designation: "56a", Dims: []float64{560, 166, 12.5, 21}, Area: 135.4, Weight: 106.316, Surface: 1.687},
	{Designation: "63a", Dims: []float64{630, 176, 13, 22}, Area: 154.6, Weight: 121.407, Surface: 1.862},
}

// GB/T 11263 - Hot rolled H-sections, dims h x b x tw x tf
var hbeamRows = []Section{
	{Designation: "HW100x100x6x8", Dims: []float64{100, 100, 6, 8}, Area: 21.58, Weight: 16.9, Surface: 0.574},
	{Designation: "HW150x150x7x10", Dims: []float64{150, 150, 7, 10}, Area: 39.64, Weight: 31.1, Surface: 0.872},
	{Designation: "HW200x200x8x12", Dims: []float64{200, 200, 8, 12}, Area: 63.53, Weight: 49.9, Surface: 1.16},
	{Designation: "HW250x250x9x14", Dims: []float64{250, 250, 9, 14}, Area: 91.43, Weight: 71.8, Surface: 1.45},
	{Designation: "HW300x300x10x15", Dims: []float64{300, 300, 10, 15}, Area: 118.5, Weight: 93.0, Surface: 1.76},
	{Designation: "HM194x150x6x9", Dims: []float64{194, 150, 6, 9}, Area: 38.11, Weight: 29.9, Surface: 0.961},
	{Designation: "HM244x175x7x11", Dims: []float64{244, 175, 7, 11}, Area: 55.49, Weight: 43.6, Surface: 1.16},
	{Designation: "HM294x200x8x12", Dims: []float64{294, 200, 8, 12}, Area: 71.05, Weight: 55.8, Surface: 1.35},
	{Designation: "HN200x100x5.5x8", Dims: []float64{200, 100, 5.5, 8}, Area: 26.66, Weight: 20.9, Surface: 0.775},
	{Designation: "HN250x125x6x9", Dims: []float64{250, 125, 6, 9}, Area: 36.96, Weight: 29.0, Surface: 0.968},
	{Designation: "HN300x150x6.5x9", Dims: []float64{300, 150, 6.5, 9}, Area: 46.78, Weight: 36.7, Surface: 1.15},
	{Designation: "HN350x175x7x11", Dims: []float64{350, 175, 7, 11}, Area: 62.91, Weight: 49.4, Surface: 1.35},
	{Designation: "HN400x200x8x13", Dims: []float64{400, 200, 8, 13}, Area: 83.37, Weight: 65.4, Surface: 1.54},
	{Designation: "HN450x200x9x14", Dims: []float64{450, 200, 9, 14}, Area: 95.43, Weight: 74.9, Surface: 1.64},
	{Designation: "HN500x200x10x16", Dims: []float64{500, 200, 10, 16}, Area: 112.3, Weight: 88.2, Surface: 1.74},
}

// GB/T 9945 - Bulb flats for shipbuilding, dims h x t. Surface is not tabulated.
var bulbFlatRows = []Section{
	{Designation: "80x5", Dims: []float64{80, 5}, Area: 5.14, Weight: 4.03},
	{Designation: "100x6", Dims: []float64{100, 6}, Area: 7.99, Weight: 6.27},
	{Designation: "120x6", Dims: []float64{120, 6}, Area: 9.31, Weight: 7.31},
	{Designation: "140x7", Dims: []float64{140, 7}, Area: 12.4, Weight: 9.74},
	{Designation: "160x8", Dims: []float64{160, 8}, Area: 15.9, Weight: 12.5},
	{Designation: "180x8", Dims: []float64{180, 8}, Area: 18.8, Weight: 14.8},
	{Designation: "200x10", Dims: []float64{200, 10}, Area: 24.6, Weight: 19.3},
	{Designation: "220x10", Dims: []float64{220, 10}, Area: 27.6, Weight: 21.7},
	{Designation: "240x10", Dims: []float64{240, 10}, Area: 30.4, Weight: 23.9},
}
