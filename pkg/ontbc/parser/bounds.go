package parser

// findDataBounds finds the bounding box of non-empty cells.
// minRow is -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// crop returns the rectangle [minRow,maxRow]x[minCol,maxCol] (0-based, inclusive) of rows.
// Short rows are padded with empty strings up to the right edge of the rectangle.
func crop(rows [][]string, minRow, maxRow, minCol, maxCol int) [][]string {
	if minRow < 0 || minRow > maxRow || minCol > maxCol {
		return nil
	}
	width := maxCol - minCol + 1
	out := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		cells := make([]string, width)
		if rowIdx < len(rows) {
			row := rows[rowIdx]
			for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
				cells[colIdx-minCol] = row[colIdx]
			}
		}
		out = append(out, cells)
	}
	return out
}
