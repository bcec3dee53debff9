// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import "github.com/tmonkey-lang/tmonkey/token"

// prec is the binding power of an infix or postfix operator.
//
// An operator only extends an expression being parsed at some minimum prec
// if its own prec is strictly greater. Operators of equal prec therefore
// associate to the left.
type prec uint8

const (
	precLowest prec = iota
	precAssign
	precEquals
	precRelational
	precAdditive
	precMultiplicative
	precPrefix
	precCall
	precIndex
	precSelect // Reserved for member selection with ., which has no production yet.
)

// precedence returns the binding power of kind when it follows an
// expression. Kinds that cannot continue an expression have precLowest.
func precedence(kind token.Kind) prec {
	switch kind {
	case token.Eq:
		return precAssign
	case token.EqEq, token.NotEq:
		return precEquals
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precRelational
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	case token.LParen:
		return precCall
	case token.LBracket:
		return precIndex
	case token.Dot:
		return precSelect
	default:
		return precLowest
	}
}
