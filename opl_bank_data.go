// opl_bank_data.go - Built-in Win95 SB16 melodic and GS rhythm instrument banks

package main

// oplMelodicBank holds the General MIDI melodic instruments, indexed by program.
var oplMelodicBank = [128]InstrumentDefinition{
	// 0x00
	{Operators: [4]OperatorDefinition{{0x01, 0x8F, 0xF2, 0xF4, 0x00}, {0x01, 0x06, 0xF2, 0xF7, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x01, 0x4B, 0xF2, 0xF4, 0x00}, {0x01, 0x00, 0xF2, 0xF7, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x01, 0x49, 0xF2, 0xF4, 0x00}, {0x01, 0x00, 0xF2, 0xF6, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x81, 0x12, 0xF2, 0xF7, 0x00}, {0x41, 0x00, 0xF2, 0xF7, 0x00}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x01, 0x57, 0xF1, 0xF7, 0x00}, {0x01, 0x00, 0xF2, 0xF7, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x01, 0x93, 0xF1, 0xF7, 0x00}, {0x01, 0x00, 0xF2, 0xF7, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x01, 0x80, 0xA1, 0xF2, 0x00}, {0x16, 0x0E, 0xF2, 0xF5, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x01, 0x92, 0xC2, 0xF8, 0x00}, {0x01, 0x00, 0xC2, 0xF8, 0x00}}, ConnectionFeedback0: 0x3A},
	// 0x08
	{Operators: [4]OperatorDefinition{{0x0C, 0x5C, 0xF6, 0xF4, 0x00}, {0x81, 0x00, 0xF3, 0xF5, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x07, 0x97, 0xF3, 0xF2, 0x00}, {0x11, 0x80, 0xF2, 0xF1, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x17, 0x21, 0x54, 0xF4, 0x00}, {0x01, 0x00, 0xF4, 0xF4, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x98, 0x62, 0xF3, 0xF6, 0x00}, {0x81, 0x00, 0xF2, 0xF6, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x18, 0x23, 0xF6, 0xF6, 0x00}, {0x01, 0x00, 0xE7, 0xF7, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x15, 0x91, 0xF6, 0xF6, 0x00}, {0x01, 0x00, 0xF6, 0xF6, 0x00}}, ConnectionFeedback0: 0x34},
	{Operators: [4]OperatorDefinition{{0x45, 0x59, 0xD3, 0xF3, 0x00}, {0x81, 0x80, 0xA3, 0xF3, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x03, 0x49, 0x75, 0xF5, 0x01}, {0x81, 0x80, 0xB5, 0xF5, 0x00}}, ConnectionFeedback0: 0x34},
	// 0x10
	{Operators: [4]OperatorDefinition{{0x71, 0x92, 0xF6, 0x14, 0x00}, {0x31, 0x00, 0xF1, 0x07, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x72, 0x14, 0xC7, 0x58, 0x00}, {0x30, 0x00, 0xC7, 0x08, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x70, 0x44, 0xAA, 0x18, 0x00}, {0xB1, 0x00, 0x8A, 0x08, 0x00}}, ConnectionFeedback0: 0x34},
	{Operators: [4]OperatorDefinition{{0x23, 0x93, 0x97, 0x23, 0x01}, {0xB1, 0x00, 0x55, 0x14, 0x00}}, ConnectionFeedback0: 0x34},
	{Operators: [4]OperatorDefinition{{0x61, 0x13, 0x97, 0x04, 0x01}, {0xB1, 0x80, 0x55, 0x04, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x24, 0x48, 0x98, 0x2A, 0x01}, {0xB1, 0x00, 0x46, 0x1A, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x61, 0x13, 0x91, 0x06, 0x01}, {0x21, 0x00, 0x61, 0x07, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x21, 0x13, 0x71, 0x06, 0x00}, {0xA1, 0x89, 0x61, 0x07, 0x00}}, ConnectionFeedback0: 0x36},
	// 0x18
	{Operators: [4]OperatorDefinition{{0x02, 0x9C, 0xF3, 0x94, 0x01}, {0x41, 0x80, 0xF3, 0xC8, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x03, 0x54, 0xF3, 0x9A, 0x01}, {0x11, 0x00, 0xF1, 0xE7, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x23, 0x5F, 0xF1, 0x3A, 0x00}, {0x21, 0x00, 0xF2, 0xF8, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x03, 0x87, 0xF6, 0x22, 0x01}, {0x21, 0x80, 0xF3, 0xF8, 0x00}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x03, 0x47, 0xF9, 0x54, 0x00}, {0x21, 0x00, 0xF6, 0x3A, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x23, 0x4A, 0x91, 0x41, 0x01}, {0x21, 0x05, 0x84, 0x19, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x23, 0x4A, 0x95, 0x19, 0x01}, {0x21, 0x00, 0x94, 0x19, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x09, 0xA1, 0x20, 0x4F, 0x00}, {0x84, 0x80, 0xD1, 0xF8, 0x00}}, ConnectionFeedback0: 0x38},
	// 0x20
	{Operators: [4]OperatorDefinition{{0x21, 0x1E, 0x94, 0x06, 0x00}, {0xA2, 0x00, 0xC3, 0xA6, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x31, 0x12, 0xF1, 0x28, 0x00}, {0x31, 0x00, 0xF1, 0x18, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x31, 0x8D, 0xF1, 0xE8, 0x00}, {0x31, 0x00, 0xF1, 0x78, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x31, 0x5B, 0x51, 0x28, 0x00}, {0x32, 0x00, 0x71, 0x48, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x01, 0x8B, 0xA1, 0x9A, 0x00}, {0x21, 0x40, 0xF2, 0xDF, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x21, 0x8B, 0xA2, 0x16, 0x00}, {0x21, 0x08, 0xA1, 0xDF, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x31, 0x8B, 0xF4, 0xE8, 0x00}, {0x31, 0x00, 0xF1, 0x78, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x31, 0x12, 0xF1, 0x28, 0x00}, {0x31, 0x00, 0xF1, 0x18, 0x00}}, ConnectionFeedback0: 0x3A},
	// 0x28
	{Operators: [4]OperatorDefinition{{0x31, 0x15, 0xDD, 0x13, 0x01}, {0x21, 0x00, 0x56, 0x26, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x31, 0x16, 0xDD, 0x13, 0x01}, {0x21, 0x00, 0x66, 0x06, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x71, 0x49, 0xD1, 0x1C, 0x01}, {0x31, 0x00, 0x61, 0x0C, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x21, 0x4D, 0x71, 0x12, 0x01}, {0x23, 0x80, 0x72, 0x06, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0xF1, 0x40, 0xF1, 0x21, 0x01}, {0xE1, 0x00, 0x6F, 0x16, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x02, 0x1A, 0xF5, 0x75, 0x01}, {0x01, 0x80, 0x85, 0x35, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x02, 0x1D, 0xF5, 0x75, 0x01}, {0x01, 0x80, 0xF3, 0xF4, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x10, 0x41, 0xF5, 0x05, 0x01}, {0x11, 0x00, 0xF2, 0xC3, 0x00}}, ConnectionFeedback0: 0x32},
	// 0x30
	{Operators: [4]OperatorDefinition{{0x21, 0x9B, 0xB1, 0x25, 0x01}, {0xA2, 0x01, 0x72, 0x08, 0x00}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0xA1, 0x98, 0x7F, 0x03, 0x01}, {0x21, 0x00, 0x3F, 0x07, 0x01}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0xA1, 0x93, 0xC1, 0x12, 0x00}, {0x61, 0x00, 0x4F, 0x05, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x21, 0x18, 0xC1, 0x22, 0x00}, {0x61, 0x00, 0x4F, 0x05, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x31, 0x5B, 0xF4, 0x15, 0x00}, {0x72, 0x83, 0x8A, 0x05, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0xA1, 0x90, 0x74, 0x39, 0x00}, {0x61, 0x00, 0x71, 0x67, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x71, 0x57, 0x54, 0x05, 0x00}, {0x72, 0x00, 0x7A, 0x05, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x90, 0x00, 0x54, 0x63, 0x00}, {0x41, 0x00, 0xA5, 0x45, 0x00}}, ConnectionFeedback0: 0x38},
	// 0x38
	{Operators: [4]OperatorDefinition{{0x21, 0x92, 0x85, 0x17, 0x00}, {0x21, 0x01, 0x8F, 0x09, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x21, 0x94, 0x75, 0x17, 0x00}, {0x21, 0x05, 0x8F, 0x09, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x21, 0x94, 0x76, 0x15, 0x00}, {0x61, 0x00, 0x82, 0x37, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x31, 0x43, 0x9E, 0x17, 0x01}, {0x21, 0x00, 0x62, 0x2C, 0x01}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x21, 0x9B, 0x61, 0x6A, 0x00}, {0x21, 0x00, 0x7F, 0x0A, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x61, 0x8A, 0x75, 0x1F, 0x00}, {0x22, 0x06, 0x74, 0x0F, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0xA1, 0x86, 0x72, 0x55, 0x01}, {0x21, 0x83, 0x71, 0x18, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x4D, 0x54, 0x3C, 0x00}, {0x21, 0x00, 0xA6, 0x1C, 0x00}}, ConnectionFeedback0: 0x38},
	// 0x40
	{Operators: [4]OperatorDefinition{{0x31, 0x8F, 0x93, 0x02, 0x01}, {0x61, 0x00, 0x72, 0x0B, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x31, 0x8E, 0x93, 0x03, 0x01}, {0x61, 0x00, 0x72, 0x09, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x31, 0x91, 0x93, 0x03, 0x01}, {0x61, 0x00, 0x82, 0x09, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x31, 0x8E, 0x93, 0x0F, 0x01}, {0x61, 0x00, 0x72, 0x0F, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x21, 0x4B, 0xAA, 0x16, 0x01}, {0x21, 0x00, 0x8F, 0x0A, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x31, 0x90, 0x7E, 0x17, 0x01}, {0x21, 0x00, 0x8B, 0x0C, 0x01}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x31, 0x81, 0x75, 0x19, 0x01}, {0x32, 0x00, 0x61, 0x19, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x32, 0x90, 0x9B, 0x21, 0x00}, {0x21, 0x00, 0x72, 0x17, 0x00}}, ConnectionFeedback0: 0x34},
	// 0x48
	{Operators: [4]OperatorDefinition{{0xE1, 0x1F, 0x85, 0x5F, 0x00}, {0xE1, 0x00, 0x65, 0x1A, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0xE1, 0x46, 0x88, 0x5F, 0x00}, {0xE1, 0x00, 0x65, 0x1A, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0xA1, 0x9C, 0x75, 0x1F, 0x00}, {0x21, 0x00, 0x75, 0x0A, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x31, 0x8B, 0x84, 0x58, 0x00}, {0x21, 0x00, 0x65, 0x1A, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0xE1, 0x4C, 0x66, 0x56, 0x00}, {0xA1, 0x00, 0x65, 0x26, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x62, 0xCB, 0x76, 0x46, 0x00}, {0xA1, 0x00, 0x55, 0x36, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x62, 0x99, 0x57, 0x07, 0x00}, {0xA1, 0x00, 0x56, 0x07, 0x00}}, ConnectionFeedback0: 0x3B},
	{Operators: [4]OperatorDefinition{{0x62, 0x93, 0x77, 0x07, 0x00}, {0xA1, 0x00, 0x76, 0x07, 0x00}}, ConnectionFeedback0: 0x3B},
	// 0x50
	{Operators: [4]OperatorDefinition{{0x22, 0x59, 0xFF, 0x03, 0x02}, {0x21, 0x00, 0xFF, 0x0F, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x0E, 0xFF, 0x0F, 0x01}, {0x21, 0x00, 0xFF, 0x0F, 0x01}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x22, 0x46, 0x86, 0x55, 0x00}, {0x21, 0x80, 0x64, 0x18, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x45, 0x66, 0x12, 0x00}, {0xA1, 0x00, 0x96, 0x0A, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x8B, 0x92, 0x2A, 0x01}, {0x22, 0x00, 0x91, 0x2A, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0xA2, 0x9E, 0xDF, 0x05, 0x00}, {0x61, 0x40, 0x6F, 0x07, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x20, 0x1A, 0xEF, 0x01, 0x00}, {0x60, 0x00, 0x8F, 0x06, 0x02}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x8F, 0xF1, 0x29, 0x00}, {0x21, 0x80, 0xF4, 0x09, 0x00}}, ConnectionFeedback0: 0x3A},
	// 0x58
	{Operators: [4]OperatorDefinition{{0x77, 0xA5, 0x53, 0x94, 0x00}, {0xA1, 0x00, 0xA0, 0x05, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x61, 0x1F, 0xA8, 0x11, 0x00}, {0xB1, 0x80, 0x25, 0x03, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x61, 0x17, 0x91, 0x34, 0x00}, {0x61, 0x00, 0x55, 0x16, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x71, 0x5D, 0x54, 0x01, 0x00}, {0x72, 0x00, 0x6A, 0x03, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x97, 0x21, 0x43, 0x00}, {0xA2, 0x00, 0x42, 0x35, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0xA1, 0x1C, 0xA1, 0x77, 0x01}, {0x21, 0x00, 0x31, 0x47, 0x01}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x21, 0x89, 0x11, 0x33, 0x00}, {0x61, 0x03, 0x42, 0x25, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0xA1, 0x15, 0x11, 0x47, 0x01}, {0x21, 0x00, 0xCF, 0x07, 0x00}}, ConnectionFeedback0: 0x30},
	// 0x60
	{Operators: [4]OperatorDefinition{{0x3A, 0xCE, 0xF8, 0xF6, 0x00}, {0x51, 0x00, 0x86, 0x02, 0x00}}, ConnectionFeedback0: 0x32},
	{Operators: [4]OperatorDefinition{{0x21, 0x15, 0x21, 0x23, 0x01}, {0x21, 0x00, 0x41, 0x13, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x06, 0x5B, 0x74, 0x95, 0x00}, {0x01, 0x00, 0xA5, 0x72, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x22, 0x92, 0xB1, 0x81, 0x00}, {0x61, 0x83, 0xF2, 0x26, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x41, 0x4D, 0xF1, 0x51, 0x01}, {0x42, 0x00, 0xF2, 0xF5, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x61, 0x94, 0x11, 0x51, 0x01}, {0xA3, 0x80, 0x11, 0x13, 0x00}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x61, 0x8C, 0x11, 0x31, 0x00}, {0xA1, 0x80, 0x1D, 0x03, 0x00}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0xA4, 0x4C, 0xF3, 0x73, 0x01}, {0x61, 0x00, 0x81, 0x23, 0x00}}, ConnectionFeedback0: 0x34},
	// 0x68
	{Operators: [4]OperatorDefinition{{0x02, 0x85, 0xD2, 0x53, 0x00}, {0x07, 0x03, 0xF2, 0xF6, 0x01}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x11, 0x0C, 0xA3, 0x11, 0x01}, {0x13, 0x80, 0xA2, 0xE5, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x11, 0x06, 0xF6, 0x41, 0x01}, {0x11, 0x00, 0xF2, 0xE6, 0x02}}, ConnectionFeedback0: 0x34},
	{Operators: [4]OperatorDefinition{{0x93, 0x91, 0xD4, 0x32, 0x00}, {0x91, 0x00, 0xEB, 0x11, 0x01}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x04, 0x4F, 0xFA, 0x56, 0x00}, {0x01, 0x00, 0xC2, 0x05, 0x00}}, ConnectionFeedback0: 0x3C},
	{Operators: [4]OperatorDefinition{{0x21, 0x49, 0x7C, 0x20, 0x00}, {0x22, 0x00, 0x6F, 0x0C, 0x01}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x31, 0x85, 0xDD, 0x33, 0x01}, {0x21, 0x00, 0x56, 0x16, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x20, 0x04, 0xDA, 0x05, 0x02}, {0x21, 0x81, 0x8F, 0x0B, 0x00}}, ConnectionFeedback0: 0x36},
	// 0x70
	{Operators: [4]OperatorDefinition{{0x05, 0x6A, 0xF1, 0xE5, 0x00}, {0x03, 0x80, 0xC3, 0xE5, 0x00}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x07, 0x15, 0xEC, 0x26, 0x00}, {0x02, 0x00, 0xF8, 0x16, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x05, 0x9D, 0x67, 0x35, 0x00}, {0x01, 0x00, 0xDF, 0x05, 0x00}}, ConnectionFeedback0: 0x38},
	{Operators: [4]OperatorDefinition{{0x18, 0x96, 0xFA, 0x28, 0x00}, {0x12, 0x00, 0xF8, 0xE5, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x10, 0x86, 0xA8, 0x07, 0x00}, {0x00, 0x03, 0xFA, 0x03, 0x00}}, ConnectionFeedback0: 0x36},
	{Operators: [4]OperatorDefinition{{0x11, 0x41, 0xF8, 0x47, 0x02}, {0x10, 0x03, 0xF3, 0x03, 0x00}}, ConnectionFeedback0: 0x34},
	{Operators: [4]OperatorDefinition{{0x01, 0x8E, 0xF1, 0x06, 0x02}, {0x10, 0x00, 0xF3, 0x02, 0x00}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0x1F, 0x00, 0x00}, {0xC0, 0x00, 0x1F, 0xFF, 0x03}}, ConnectionFeedback0: 0x3E},
	// 0x78
	{Operators: [4]OperatorDefinition{{0x06, 0x80, 0xF8, 0x24, 0x00}, {0x03, 0x88, 0x56, 0x84, 0x02}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0xF8, 0x00, 0x00}, {0xD0, 0x05, 0x34, 0x04, 0x03}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0xF6, 0x00, 0x00}, {0xC0, 0x00, 0x1F, 0x02, 0x03}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0xD5, 0x95, 0x37, 0xA3, 0x00}, {0xDA, 0x40, 0x56, 0x37, 0x00}}, ConnectionFeedback0: 0x30},
	{Operators: [4]OperatorDefinition{{0x35, 0x5C, 0xB2, 0x61, 0x02}, {0x14, 0x08, 0xF4, 0x15, 0x00}}, ConnectionFeedback0: 0x3A},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0xF6, 0x00, 0x00}, {0xD0, 0x00, 0x4F, 0xF5, 0x03}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0x26, 0x00, 0xFF, 0x01, 0x00}, {0xE4, 0x00, 0x12, 0x16, 0x01}}, ConnectionFeedback0: 0x3E},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF3, 0xF0, 0x00}, {0x00, 0x00, 0xF6, 0xC9, 0x02}}, ConnectionFeedback0: 0x3E},
}

// oplRhythmBank holds the GS percussion instruments for notes
// OPL_GS_RHYTHM_FIRST_NOTE through OPL_GS_RHYTHM_LAST_NOTE.
var oplRhythmBank = [62]InstrumentDefinition{
	// 0x1B
	{},
	{},
	{},
	{},
	{},
	// 0x20
	{},
	{},
	{},
	{Operators: [4]OperatorDefinition{{0x10, 0x44, 0xF8, 0x77, 0x02}, {0x11, 0x00, 0xF3, 0x06, 0x00}}, ConnectionFeedback0: 0x38, RhythmNote: 0x23},
	{Operators: [4]OperatorDefinition{{0x10, 0x44, 0xF8, 0x77, 0x02}, {0x11, 0x00, 0xF3, 0x06, 0x00}}, ConnectionFeedback0: 0x38, RhythmNote: 0x23},
	{Operators: [4]OperatorDefinition{{0x02, 0x07, 0xF9, 0xFF, 0x00}, {0x11, 0x00, 0xF8, 0xFF, 0x00}}, ConnectionFeedback0: 0x38, RhythmNote: 0x34},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xFC, 0x05, 0x02}, {0x00, 0x00, 0xFA, 0x17, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x30},
	{Operators: [4]OperatorDefinition{{0x00, 0x02, 0xFF, 0x07, 0x00}, {0x01, 0x00, 0xFF, 0x08, 0x00}}, ConnectionFeedback0: 0x30, RhythmNote: 0x3A},
	// 0x28
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xFC, 0x05, 0x02}, {0x00, 0x00, 0xFA, 0x17, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x3C},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF6, 0x0C, 0x00}, {0x00, 0x00, 0xF6, 0x06, 0x00}}, ConnectionFeedback0: 0x34, RhythmNote: 0x2F},
	{Operators: [4]OperatorDefinition{{0x0C, 0x00, 0xF6, 0x08, 0x00}, {0x12, 0x00, 0xFB, 0x47, 0x02}}, ConnectionFeedback0: 0x3A, RhythmNote: 0x2B},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF6, 0x0C, 0x00}, {0x00, 0x00, 0xF6, 0x06, 0x00}}, ConnectionFeedback0: 0x34, RhythmNote: 0x31},
	{Operators: [4]OperatorDefinition{{0x0C, 0x00, 0xF6, 0x08, 0x00}, {0x12, 0x05, 0x7B, 0x47, 0x02}}, ConnectionFeedback0: 0x3A, RhythmNote: 0x2B},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF6, 0x0C, 0x00}, {0x00, 0x00, 0xF6, 0x06, 0x00}}, ConnectionFeedback0: 0x34, RhythmNote: 0x33},
	{Operators: [4]OperatorDefinition{{0x0C, 0x00, 0xF6, 0x02, 0x00}, {0x12, 0x00, 0xCB, 0x43, 0x02}}, ConnectionFeedback0: 0x3A, RhythmNote: 0x2B},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF6, 0x0C, 0x00}, {0x00, 0x00, 0xF6, 0x06, 0x00}}, ConnectionFeedback0: 0x34, RhythmNote: 0x36},
	// 0x30
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF6, 0x0C, 0x00}, {0x00, 0x00, 0xF6, 0x06, 0x00}}, ConnectionFeedback0: 0x34, RhythmNote: 0x39},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0xF6, 0x00, 0x00}, {0xD0, 0x00, 0x9F, 0x02, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x48},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0xF6, 0x0C, 0x00}, {0x00, 0x00, 0xF6, 0x06, 0x00}}, ConnectionFeedback0: 0x34, RhythmNote: 0x3C},
	{Operators: [4]OperatorDefinition{{0x0E, 0x08, 0xF8, 0x42, 0x00}, {0x07, 0x4A, 0xF4, 0xE4, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x4C},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0xF5, 0x30, 0x00}, {0xD0, 0x0A, 0x9F, 0x02, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x54},
	{Operators: [4]OperatorDefinition{{0x0E, 0x0A, 0xE4, 0xE4, 0x03}, {0x07, 0x5D, 0xF5, 0xE5, 0x01}}, ConnectionFeedback0: 0x36, RhythmNote: 0x24},
	{Operators: [4]OperatorDefinition{{0x02, 0x03, 0xB4, 0x04, 0x00}, {0x05, 0x0A, 0x97, 0xF7, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x4C},
	{Operators: [4]OperatorDefinition{{0x4E, 0x00, 0xF6, 0x00, 0x00}, {0x9E, 0x00, 0x9F, 0x02, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x54},
	// 0x38
	{Operators: [4]OperatorDefinition{{0x11, 0x45, 0xF8, 0x37, 0x02}, {0x10, 0x08, 0xF3, 0x05, 0x00}}, ConnectionFeedback0: 0x38, RhythmNote: 0x53},
	{Operators: [4]OperatorDefinition{{0x0E, 0x00, 0xF6, 0x00, 0x00}, {0xD0, 0x00, 0x9F, 0x02, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x54},
	{Operators: [4]OperatorDefinition{{0x80, 0x00, 0xFF, 0x03, 0x03}, {0x10, 0x0D, 0xFF, 0x14, 0x00}}, ConnectionFeedback0: 0x3C, RhythmNote: 0x18},
	{Operators: [4]OperatorDefinition{{0x0E, 0x08, 0xF8, 0x42, 0x00}, {0x07, 0x4A, 0xF4, 0xE4, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x4D},
	{Operators: [4]OperatorDefinition{{0x06, 0x0B, 0xF5, 0x0C, 0x00}, {0x02, 0x00, 0xF5, 0x08, 0x00}}, ConnectionFeedback0: 0x36, RhythmNote: 0x3C},
	{Operators: [4]OperatorDefinition{{0x01, 0x00, 0xFA, 0xBF, 0x00}, {0x02, 0x00, 0xC8, 0x97, 0x00}}, ConnectionFeedback0: 0x37, RhythmNote: 0x41},
	{Operators: [4]OperatorDefinition{{0x01, 0x51, 0xFA, 0x87, 0x00}, {0x01, 0x00, 0xFA, 0xB7, 0x00}}, ConnectionFeedback0: 0x36, RhythmNote: 0x3B},
	{Operators: [4]OperatorDefinition{{0x01, 0x54, 0xFA, 0x8D, 0x00}, {0x02, 0x00, 0xF8, 0xB8, 0x00}}, ConnectionFeedback0: 0x36, RhythmNote: 0x33},
	// 0x40
	{Operators: [4]OperatorDefinition{{0x01, 0x59, 0xFA, 0x88, 0x00}, {0x02, 0x00, 0xF8, 0xB6, 0x00}}, ConnectionFeedback0: 0x36, RhythmNote: 0x2D},
	{Operators: [4]OperatorDefinition{{0x01, 0x00, 0xF9, 0x0A, 0x03}, {0x00, 0x00, 0xFA, 0x06, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x47},
	{Operators: [4]OperatorDefinition{{0x00, 0x80, 0xF9, 0x89, 0x03}, {0x00, 0x00, 0xF6, 0x6C, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x3C},
	{Operators: [4]OperatorDefinition{{0x03, 0x80, 0xF8, 0x88, 0x03}, {0x0C, 0x08, 0xF6, 0xB6, 0x00}}, ConnectionFeedback0: 0x3F, RhythmNote: 0x3A},
	{Operators: [4]OperatorDefinition{{0x03, 0x85, 0xF8, 0x88, 0x03}, {0x0C, 0x00, 0xF6, 0xB6, 0x00}}, ConnectionFeedback0: 0x3F, RhythmNote: 0x35},
	{Operators: [4]OperatorDefinition{{0x0E, 0x40, 0x76, 0x4F, 0x00}, {0x00, 0x08, 0x77, 0x18, 0x02}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x40},
	{Operators: [4]OperatorDefinition{{0x0E, 0x40, 0xC8, 0x49, 0x00}, {0x03, 0x00, 0x9B, 0x69, 0x02}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x47},
	{Operators: [4]OperatorDefinition{{0xD7, 0xDC, 0xAD, 0x05, 0x03}, {0xC7, 0x00, 0x8D, 0x05, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x3D},
	// 0x48
	{Operators: [4]OperatorDefinition{{0xD7, 0xDC, 0xA8, 0x04, 0x03}, {0xC7, 0x00, 0x88, 0x04, 0x00}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x3D},
	{Operators: [4]OperatorDefinition{{0x80, 0x00, 0xF6, 0x06, 0x03}, {0x11, 0x00, 0x67, 0x17, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x30},
	{Operators: [4]OperatorDefinition{{0x80, 0x00, 0xF5, 0x05, 0x02}, {0x11, 0x09, 0x46, 0x16, 0x03}}, ConnectionFeedback0: 0x3E, RhythmNote: 0x30},
	{Operators: [4]OperatorDefinition{{0x06, 0x3F, 0x00, 0xF4, 0x00}, {0x15, 0x00, 0xF7, 0xF5, 0x00}}, ConnectionFeedback0: 0x31, RhythmNote: 0x45},
	{Operators: [4]OperatorDefinition{{0x06, 0x3F, 0x00, 0xF4, 0x03}, {0x12, 0x00, 0xF7, 0xF5, 0x00}}, ConnectionFeedback0: 0x30, RhythmNote: 0x44},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x3F},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x4A},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x3C},
	// 0x50
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x50},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x40},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x45},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x49},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x4B},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x44},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x30},
	{Operators: [4]OperatorDefinition{{0x00, 0x00, 0x00, 0x00, 0x00}, {0x00, 0x00, 0x00, 0x00, 0x00}}, ConnectionFeedback0: 0x00, RhythmNote: 0x35},
	// 0x58
	{},
}
