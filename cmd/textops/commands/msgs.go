package commands

// Message constants
const (
	MsgRootShort = "Composable text filters for shell pipelines"
	MsgRootLong  = `textops is a collection of small, composable text filters: case
conversion, trimming, list splitting and joining, common prefix/suffix
computation, and placeholder flattening.

Each subcommand is an independent, stateless filter over standard input
or its arguments, designed to be chained with ordinary pipelines.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagUnique  = "Drop duplicate tokens"
	MsgFlagReverse = "Sort in descending order"

	MsgLowerShort        = "Map stdin to lowercase"
	MsgUpperShort        = "Map stdin to uppercase"
	MsgTitleShort        = "Uppercase the first letter of every word"
	MsgTrimShort         = "Remove cutset characters from both ends"
	MsgLtrimShort        = "Remove cutset characters from the start"
	MsgRtrimShort        = "Remove cutset characters from the end"
	MsgSqueezeShort      = "Collapse character runs and trim the ends"
	MsgSqueezeLinesShort = "Collapse runs of blank lines"
	MsgTrimLinesShort    = "Drop blank lines at both ends"

	MsgSplitShort = "Split delimited text into one token per line"
	MsgJoinShort  = "Join one token per line into delimited text"
	MsgSortShort  = "Sort the tokens of a delimited list"

	MsgCommonPrefixShort = "Print the longest prefix shared by every string"
	MsgCommonSuffixShort = "Print the longest suffix shared by every string"

	MsgFlattenShort = "Substitute {{name}} placeholders in TEXT"
	MsgFlattenLong  = `Replace every {{name}} placeholder in TEXT with the value of the
corresponding environment variable and print the result.

With NAME arguments, only those names are substituted, in the order
given; a name with no value substitutes to the empty string. Without
NAME arguments every environment variable is substituted, in sorted
name order.

FLATTEN_L and FLATTEN_R override the placeholder delimiters.`
	MsgFlattenFileShort = "Substitute {{name}} placeholders in a file, in place"
	MsgFlattenFileLong  = `Apply the same substitution as 'flatten' to the contents of PATH and
rewrite the file in place. The rewrite is atomic: readers see either
the old or the new contents, and a failure leaves the file untouched.`

	MsgOpsShort = "List registered operations"
	MsgOpsLong  = `List every registered text operation with its group and summary.
An optional PREFIX narrows the listing to operations whose name starts
with it.`

	MsgVersionShort = "Print version information"
)
