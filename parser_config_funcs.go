package optarg

// WithOption declares an option during construction, with the same
// normalization as AddOption.
//
// Configuration example:
//
//	parser := optarg.New(
//		optarg.WithOption("h", "help", "", "print this help and exit"),
//		optarg.WithOption("o", "output", "FILE", "write the result to FILE"),
//		optarg.WithOption("v", "verbose", "", "increase verbosity"))
func WithOption(short, long, placeholder, description string) ConfigureParserFunc {
	return func(parser *Parser) {
		parser.AddOption(short, long, placeholder, description)
	}
}

// WithOptions declares several options at once. The fields are declare
// values, exactly as they would be passed to AddOption.
func WithOptions(options ...Option) ConfigureParserFunc {
	return func(parser *Parser) {
		for _, opt := range options {
			parser.AddOption(opt.Short, opt.Long, opt.Placeholder, opt.Description)
		}
	}
}
