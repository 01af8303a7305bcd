package deluxetable

import "strings"

// splitLines splits text the way the file reader does, keeping line endings.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

const sampleTable = `% generated by hand
\begin{deluxetable}{lcc}
\tablecaption{Stellar parameters}
\tablehead{\colhead{Name} & \colhead{Mass} & \colhead{Ref.}}
\startdata
Star A & 1.0 & \citet{SmithA} \\
Star B & 0.8 & \citet{JonesB} \\
Star C & 0.5 & \citet{SmithA}
\enddata
\end{deluxetable}
`
