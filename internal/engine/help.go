package engine

const helpText = "List commands (ranks start at 1):\n" +
	"`create <name>` start a new list and use it\n" +
	"`use <name>` switch to a list\n" +
	"`drop <name>` delete a list\n" +
	"`show [name] [@someone]` show your lists, one list, or someone's best girl list\n" +
	"`add [rank] <text>` add at rank, or at the end (alias: insert)\n" +
	"`multiadd <a>; <b>; ...` add several at the end\n" +
	"`remove <rank>; <rank>...` remove elements (alias: delete)\n" +
	"`replace <rank> <text>` overwrite an element (aliases: rename, edit)\n" +
	"`move <from> <to>` move an element, shifting the ones in between\n" +
	"`swap <a> <b>` exchange two elements\n" +
	"`clear` empty the list\n" +
	"`title <text>` set the title, empty to reset\n" +
	"`thumbnail <url>` set the thumbnail, empty to remove (alias: icon)\n" +
	"`static` show the list in use"
